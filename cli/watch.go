package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/paymentsfiles/loader"
)

// Debounce timer - editors often write files in multiple steps
const debounceDelay = 100 * time.Millisecond

// watch calls onChange for every file in files that is written to, until
// ctx is done. Directories are watched so that files replaced by an atomic
// save stay watched. Standard input is never watched.
func watch(ctx context.Context, files []string, logger *slog.Logger, onChange func(name string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	targets := make(map[string]string)
	for _, name := range files {
		if loader.IsStdin(name) {
			continue
		}
		abs, err := filepath.Abs(name)
		if err != nil {
			return err
		}
		targets[abs] = name
	}
	watched := make(map[string]bool)
	for abs := range targets {
		dir := filepath.Dir(abs)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	debounce := time.NewTimer(debounceDelay)
	debounce.Stop()
	defer debounce.Stop()
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := targets[abs]; !ok {
				continue
			}
			pending[abs] = true
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			// Files are validated in the order they were named.
			for _, name := range files {
				abs, _ := filepath.Abs(name)
				if pending[abs] {
					logger.Debug("file changed", "file", name)
					onChange(name)
				}
			}
			clear(pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}
