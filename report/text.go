package report

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/paymentsfiles/output"
	"github.com/robinvdvleuten/paymentsfiles/validator"
)

// maxNameWidth is the widest file name shown in a banner.
const maxNameWidth = 60

// TextDirector writes a human-readable report.
type TextDirector struct {
	w       io.Writer
	styles  *output.Styles
	verbose bool
	errors  int
}

// TextOption configures a TextDirector.
type TextOption func(*TextDirector)

// WithVerbose reports the long form of every error message.
func WithVerbose(verbose bool) TextOption {
	return func(d *TextDirector) {
		d.verbose = verbose
	}
}

// WithStyles overrides the styles, which by default follow the
// capabilities of the writer.
func WithStyles(styles *output.Styles) TextOption {
	return func(d *TextDirector) {
		d.styles = styles
	}
}

// NewTextDirector creates a TextDirector writing to w.
func NewTextDirector(w io.Writer, opts ...TextOption) *TextDirector {
	d := &TextDirector{w: w}
	for _, opt := range opts {
		opt(d)
	}
	if d.styles == nil {
		d.styles = output.NewStyles(w)
	}
	return d
}

// Setup writes the banner naming the file.
func (d *TextDirector) Setup(name string) {
	d.errors = 0
	name = runewidth.Truncate(name, maxNameWidth, "...")
	_, _ = fmt.Fprint(d.w, d.styles.Keyword("* * * * *\nChecking Errors for "+name+"\n* * * * *"), "\n\n")
}

func (d *TextDirector) ReportFatal(err error) {
	d.errors++
	_, _ = fmt.Fprint(d.w, d.styles.Fatal("Fatal error: "+message(err)), "\n\n")
}

func (d *TextDirector) ReportErrorLine(line validator.ErrorLine) {
	d.errors++
	noun := "error"
	if len(line.Errors) > 1 {
		noun = "errors"
	}
	_, _ = fmt.Fprintln(d.w, d.styles.Fatal(fmt.Sprintf("%d %s found in line #%d:", len(line.Errors), noun, line.Line)))
	for _, e := range line.Errors {
		_, _ = fmt.Fprintln(d.w, d.styles.Fatal("--> "+e.Message(d.verbose)))
	}
	_, _ = fmt.Fprintln(d.w)
}

// Cleanup writes the pass verdict when nothing was reported.
func (d *TextDirector) Cleanup(string) {
	if d.errors == 0 {
		_, _ = fmt.Fprint(d.w, d.styles.Pass("Pass: no errors found"), "\n\n")
	}
}
