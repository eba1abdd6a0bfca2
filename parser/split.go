// Package parser splits delimited payments files into trimmed field values.
//
// Both the eager ReadAll and the lazy Lines reader share Split, so a line
// always produces the same fields regardless of how the file is read.
package parser

import "strings"

const (
	// DefaultSeparator separates fields on a line.
	DefaultSeparator = ','
	// DefaultQuote wraps a whole line when quoting is expected.
	DefaultQuote = '"'
)

// Options configures how lines are split.
type Options struct {
	// Separator between fields.
	Separator rune
	// Quote is the character wrapping a whole line.
	Quote rune
	// MustSplit requires every line to contain at least one separator.
	MustSplit bool
	// Quoted requires every line to be wrapped in one Quote on each side.
	Quoted bool
}

// Option configures Options.
type Option func(*Options)

// WithSeparator sets the field separator.
func WithSeparator(sep rune) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// WithQuotes requires every line to be wrapped in quotation marks.
func WithQuotes(quoted bool) Option {
	return func(o *Options) {
		o.Quoted = quoted
	}
}

// WithMustSplit sets whether a line without separator is malformed.
func WithMustSplit(must bool) Option {
	return func(o *Options) {
		o.MustSplit = must
	}
}

// NewOptions returns comma-separated, unquoted options which require every
// line to contain a separator.
func NewOptions(opts ...Option) Options {
	o := Options{
		Separator: DefaultSeparator,
		Quote:     DefaultQuote,
		MustSplit: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Split strips the wrapping quotes of a raw line when configured, splits it
// on the separator and trims surrounding whitespace from every field.
func Split(raw string, line int, opts Options) ([]string, error) {
	clean := raw
	if opts.Quoted {
		q := string(opts.Quote)
		if len(raw) < 2*len(q) || !strings.HasPrefix(raw, q) || !strings.HasSuffix(raw, q) {
			return nil, &FormatError{Line: line, Quoted: true, Separator: opts.Separator}
		}
		clean = raw[len(q) : len(raw)-len(q)]
	}

	sep := string(opts.Separator)
	if opts.MustSplit && !strings.Contains(clean, sep) {
		return nil, &FormatError{Line: line, Quoted: opts.Quoted, Separator: opts.Separator}
	}

	fields := strings.Split(clean, sep)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields, nil
}
