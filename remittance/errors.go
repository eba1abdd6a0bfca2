package remittance

import (
	"errors"

	"github.com/robinvdvleuten/paymentsfiles/field"
)

// Errors returned while generating a remittance file.
var (
	ErrNoDeposit    = errors.New("a deposit must be created before a record can be added")
	ErrEmptyDeposit = errors.New("a deposit must contain at least one record")
	ErrAmountSum    = errors.New("the deposit amount specified in the header does not match the subsequent records' amounts")
	ErrFXFields     = errors.New("foreign exchange fields expected but not provided")
	ErrFXRate       = errors.New("foreign exchange rate not provided for the deposit or individual transaction")
	ErrClosed       = errors.New("remittance writer is closed")
)

// EntryFieldError is returned when a value given to the Writer fails the
// check its column is validated with.
type EntryFieldError struct {
	Field *field.Error
}

func (e *EntryFieldError) Error() string {
	return e.Field.Short
}
