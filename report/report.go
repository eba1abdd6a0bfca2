// Package report turns validation results into output for people and
// programs.
//
// A Controller drives a FileValidator into a Director. Directors only see
// events, so the same validation can be rendered as styled text or JSON:
//
//	c := report.NewController(remittance.NewValidator(), report.NewTextDirector(os.Stdout))
//	result := c.Validate(ctx, "deposits.csv")
package report

import (
	"context"
	"errors"

	"github.com/robinvdvleuten/paymentsfiles/loader"
	"github.com/robinvdvleuten/paymentsfiles/validator"
)

// Director receives the events of validating one file at a time.
type Director interface {
	// Setup starts the report of name.
	Setup(name string)
	// ReportFatal reports the error that ended validation.
	ReportFatal(err error)
	// ReportErrorLine reports the errors of one record.
	ReportErrorLine(line validator.ErrorLine)
	// Cleanup ends the report of name.
	Cleanup(name string)
}

// Result summarizes the validation of one file.
type Result struct {
	Name       string
	ErrorLines int
	Errors     int
	Fatal      error
}

// Passed reports whether the file had neither error lines nor a fatal error.
func (r Result) Passed() bool {
	return r.ErrorLines == 0 && r.Fatal == nil
}

// Controller validates files and reports them through a Director.
type Controller struct {
	validator validator.FileValidator
	director  Director
}

// NewController creates a Controller.
func NewController(v validator.FileValidator, d Director) *Controller {
	return &Controller{validator: v, director: d}
}

// Validate validates name and reports every error line as it is found.
func (c *Controller) Validate(ctx context.Context, name string) Result {
	result := Result{Name: loader.DisplayName(name)}

	c.director.Setup(result.Name)
	defer c.director.Cleanup(result.Name)

	for line, err := range c.validator.Validate(ctx, name) {
		if err != nil {
			result.Fatal = err
			c.director.ReportFatal(err)
			break
		}
		result.ErrorLines++
		result.Errors += len(line.Errors)
		c.director.ReportErrorLine(line)
	}
	return result
}

// message returns the text of err without the file name a FatalError adds,
// since reports already name the file.
func message(err error) string {
	var fatal *validator.FatalError
	if errors.As(err, &fatal) {
		return fatal.Err.Error()
	}
	return err.Error()
}
