package cli

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/paymentsfiles/config"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""
)

// BuildVersion returns the version shown by --version.
func BuildVersion() string {
	version := Version
	if version == "" {
		version = "dev"
	}
	if CommitSHA == "" {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, CommitSHA)
}

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool   `help:"Show timing telemetry for operations."`
	Config    string `help:"Configuration file (default: ./paymentsfiles.yaml when present)." type:"path"`
	LogLevel  string `help:"Diagnostics written to stderr: debug, info, warn or error."`
}

// load reads the configuration with overrides from command flags and
// creates the logger it asks for.
func (g *Globals) load(ctx *kong.Context, overrides map[string]any) (*config.Config, *slog.Logger, error) {
	if g.LogLevel != "" {
		overrides["log.level"] = g.LogLevel
	}
	cfg, err := config.Load(g.Config, overrides)
	if err != nil {
		return nil, nil, err
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(ctx.Stderr, level)
	if cfg.File != "" {
		logger.Debug("configuration loaded", "file", cfg.File)
	}
	return cfg, logger, nil
}

// Commands holds every command.
type Commands struct {
	Globals

	Check    CheckCmd    `cmd:"" help:"Validate payments files."`
	Generate GenerateCmd `cmd:"" help:"Generate a sample payments file."`
	Doctor   DoctorCmd   `cmd:"" help:"Doctor utilities for debugging payments files."`
}

// CLI is the root of the command line.
type CLI struct {
	Version kong.VersionFlag `help:"Show version information."`
	Commands
}
