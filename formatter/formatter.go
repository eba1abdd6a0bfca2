// Package formatter renders field values into payments file lines.
//
// It is the write-side counterpart of the parser: a line produced by a
// Formatter splits back into the same fields with the same options.
package formatter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robinvdvleuten/paymentsfiles/parser"
)

// ErrSeparatorInField is returned when a value contains the separator or
// the quote character and would not split back into the same fields.
var ErrSeparatorInField = errors.New("field value contains the separator or quote character")

// Formatter joins fields into lines.
type Formatter struct {
	opts parser.Options
}

// New creates a Formatter. It accepts the same options as the parser.
func New(opts ...parser.Option) *Formatter {
	return &Formatter{opts: parser.NewOptions(opts...)}
}

// Options returns the split options matching the lines this Formatter writes.
func (f *Formatter) Options() parser.Options {
	return f.opts
}

// Line joins fields with the separator, wrapping the line in quotes when
// configured. No trailing newline is added.
func (f *Formatter) Line(fields ...string) (string, error) {
	for _, v := range fields {
		if strings.ContainsRune(v, f.opts.Separator) || (f.opts.Quoted && strings.ContainsRune(v, f.opts.Quote)) {
			return "", fmt.Errorf("%w: %q", ErrSeparatorInField, v)
		}
		if strings.ContainsAny(v, "\r\n") {
			return "", fmt.Errorf("%w: %q", ErrSeparatorInField, v)
		}
	}

	line := strings.Join(fields, string(f.opts.Separator))
	if f.opts.Quoted {
		q := string(f.opts.Quote)
		line = q + line + q
	}
	return line, nil
}

// WriteLine writes a formatted line followed by a newline.
func (f *Formatter) WriteLine(w io.Writer, fields ...string) error {
	line, err := f.Line(fields...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, line+"\n")
	return err
}
