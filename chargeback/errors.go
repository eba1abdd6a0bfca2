package chargeback

import (
	"errors"
	"strings"

	"github.com/robinvdvleuten/paymentsfiles/field"
)

// HeaderError is returned when the first line does not name the columns
// exactly and in order.
type HeaderError struct {
	Got []string
}

func (e *HeaderError) Error() string {
	return "the specified header is incorrect--proper header names are " + strings.Join(Schema.Names(), ", ")
}

func (e *HeaderError) GetLine() int {
	return 1
}

// EmptyError is returned when a file has no line after its header.
type EmptyError struct{}

func (e *EmptyError) Error() string {
	return "the specified chargeback has no entries"
}

// Errors returned while generating a chargeback file.
var (
	ErrAmountScale = errors.New("disputed amount has more decimal places than the currency allows")
	ErrClosed      = errors.New("chargeback writer is closed")
)

// EntryFieldError is returned when a value given to the Writer fails the
// check its column is validated with.
type EntryFieldError struct {
	Field *field.Error
}

func (e *EntryFieldError) Error() string {
	return e.Field.Short
}
