package report

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/robinvdvleuten/paymentsfiles/validator"
)

// FileJSON is the JSON report of one file.
type FileJSON struct {
	File   string     `json:"file"`
	Passed bool       `json:"passed"`
	Fatal  *FatalJSON `json:"fatal,omitempty"`
	Lines  []LineJSON `json:"lines"`
}

// FatalJSON describes the error that ended validation.
type FatalJSON struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// LineJSON holds the errors of one record.
type LineJSON struct {
	Line   int      `json:"line"`
	Errors []string `json:"errors"`
}

// JSONDirector writes one JSON document per file. Error lines are buffered
// until the file's report is complete.
type JSONDirector struct {
	w       io.Writer
	verbose bool
	current *FileJSON
}

// NewJSONDirector creates a JSONDirector writing to w. When verbose is set,
// the long form of every error message is used.
func NewJSONDirector(w io.Writer, verbose bool) *JSONDirector {
	return &JSONDirector{w: w, verbose: verbose}
}

func (d *JSONDirector) Setup(name string) {
	d.current = &FileJSON{File: name, Lines: []LineJSON{}}
}

func (d *JSONDirector) ReportFatal(err error) {
	fatal := &FatalJSON{Message: message(err)}
	var fe *validator.FatalError
	if errors.As(err, &fe) {
		fatal.Line = fe.Line()
	}
	d.current.Fatal = fatal
}

func (d *JSONDirector) ReportErrorLine(line validator.ErrorLine) {
	messages := make([]string, len(line.Errors))
	for i, e := range line.Errors {
		messages[i] = e.Message(d.verbose)
	}
	d.current.Lines = append(d.current.Lines, LineJSON{Line: line.Line, Errors: messages})
}

// Cleanup writes the completed document.
func (d *JSONDirector) Cleanup(string) {
	d.current.Passed = d.current.Fatal == nil && len(d.current.Lines) == 0
	_ = json.NewEncoder(d.w).Encode(d.current)
	d.current = nil
}
