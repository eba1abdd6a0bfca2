// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles colors report and CLI text for the writer it was created for.
// Colors are dropped when the writer is not a terminal.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates Styles for w.
func NewStyles(w io.Writer) *Styles {
	return &Styles{output: termenv.NewOutput(w)}
}

// Plain creates Styles that never emit escape sequences.
func Plain(w io.Writer) *Styles {
	return &Styles{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

func (s *Styles) color(text, code string, bold bool) string {
	style := s.output.String(text).Foreground(s.output.Color(code))
	if bold {
		style = style.Bold()
	}
	return style.String()
}

// Pass styles a passing verdict (green, bold).
func (s *Styles) Pass(text string) string {
	return s.color(text, "2", true)
}

// Fatal styles a fatal verdict (red, bold).
func (s *Styles) Fatal(text string) string {
	return s.color(text, "1", true)
}

// FilePath styles a file name (cyan).
func (s *Styles) FilePath(text string) string {
	return s.color(text, "6", false)
}

// LineNumber styles a line reference (yellow).
func (s *Styles) LineNumber(text string) string {
	return s.color(text, "3", false)
}

// Amount styles a monetary value (magenta).
func (s *Styles) Amount(text string) string {
	return s.color(text, "5", false)
}

// Keyword styles a heading (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).Bold().String()
}

// Dim styles secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}

// Warning styles a count of problems (yellow, bold).
func (s *Styles) Warning(text string) string {
	return s.color(text, "3", true)
}
