package field

import (
	"fmt"
	"strings"
)

// Error describes a defect in a field value. Short is the standard message,
// Long adds context for verbose reporting.
type Error struct {
	Short string
	Long  string
}

// NewError creates an error whose verbose message equals the standard one.
func NewError(message string) *Error {
	return &Error{Short: message, Long: message}
}

// NewVerboseError creates an error with distinct standard and verbose messages.
func NewVerboseError(short, long string) *Error {
	return &Error{Short: short, Long: long}
}

// Error returns the standard message.
func (e *Error) Error() string {
	return e.Short
}

// Message returns the verbose or the standard message.
func (e *Error) Message(verbose bool) string {
	if verbose {
		return e.Long
	}
	return e.Short
}

// EmptyError is reported when a required field has no value.
func EmptyError(name string) *Error {
	return NewError(fmt.Sprintf("%s cannot be empty", name))
}

func lengthError(name string, max int) *Error {
	return NewError(fmt.Sprintf("%s cannot exceed %d characters in length", name, max))
}

func choiceError(name string, choices []string) *Error {
	return NewError(fmt.Sprintf("%s must be one of the following options: %s", name, strings.Join(choices, ", ")))
}

func integerError(name string) *Error {
	return NewError(fmt.Sprintf("%s must be a valid integer", name))
}

func decimalError(name string) *Error {
	return NewError(fmt.Sprintf("%s must be in numeric decimal form", name))
}

func currencyError(name string) *Error {
	return NewError(fmt.Sprintf("%s not a valid ISO 4217 currency code", name))
}

func asciiError(name string) *Error {
	return NewError(fmt.Sprintf("%s can only contain ASCII characters", name))
}

func dateTimeError(name, pattern string) *Error {
	return NewError(fmt.Sprintf("%s has improper date-time format (must be <%s>)", name, pattern))
}
