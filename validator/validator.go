// Package validator streams a payments file through structural, field and
// context checks in a single forward pass.
//
// Validation yields one ErrorLine per defective record as the file is read.
// A structural problem ends the sequence with a FatalError; content
// problems never do.
//
//	for line, err := range v.Validate(ctx, "remittance.csv") {
//	    if err != nil {
//	        // the file is unusable from here on
//	        return err
//	    }
//	    fmt.Println(line.Line, line.Errors)
//	}
package validator

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/robinvdvleuten/paymentsfiles/field"
)

// ErrorLine holds the content errors of one record, in field order followed
// by context errors.
type ErrorLine struct {
	Line   int
	Errors []*field.Error
}

// FileValidator validates named files.
type FileValidator interface {
	// Validate opens name and yields its error lines. Stopping the
	// iteration early releases the file.
	Validate(ctx context.Context, name string) iter.Seq2[ErrorLine, error]
}

// FatalError is a problem that makes the rest of a file unreadable.
type FatalError struct {
	Source string
	Err    error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Line returns the line the fatal problem was found at, or 0 when it is not
// tied to a line.
func (e *FatalError) Line() int {
	var lined interface{ GetLine() int }
	if errors.As(e.Err, &lined) {
		return lined.GetLine()
	}
	return 0
}
