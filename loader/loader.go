// Package loader opens payments files for streaming validation.
//
// A source is either a path on disk or "-" for standard input. A leading
// byte-order mark is consumed and UTF-16 input is decoded to UTF-8, so the
// parser always sees plain UTF-8 lines.
//
// Example usage:
//
//	ldr := loader.New()
//	src, err := ldr.Open(ctx, "remittance.csv")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StdinName is the name accepted for standard input.
const StdinName = "-"

// Loader opens named sources.
type Loader struct {
	stdin io.Reader
}

// Option configures a Loader.
type Option func(*Loader)

// WithStdin replaces the reader used for the "-" source.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{stdin: os.Stdin}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source is an open file ready to be read line by line.
type Source struct {
	// Name is the display name: the base file name, or "<stdin>".
	Name string
	// Path is the absolute path, or "<stdin>".
	Path string

	reader io.Reader
	closer io.Closer
}

// Read implements io.Reader.
func (s *Source) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

// Close releases the underlying file. Closing standard input is a no-op.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// Open opens name for reading.
func (l *Loader) Open(ctx context.Context, name string) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if IsStdin(name) {
		return &Source{
			Name:   DisplayName(name),
			Path:   "<stdin>",
			reader: stripBOM(l.stdin),
		}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	path, err := filepath.Abs(name)
	if err != nil {
		path = name
	}

	return &Source{
		Name:   DisplayName(name),
		Path:   path,
		reader: stripBOM(f),
		closer: f,
	}, nil
}

// IsStdin reports whether name refers to standard input.
func IsStdin(name string) bool {
	return name == StdinName || name == ""
}

// DisplayName returns the name a source is reported under.
func DisplayName(name string) string {
	if IsStdin(name) {
		return "<stdin>"
	}
	return filepath.Base(name)
}

func stripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}
