package chargeback

import (
	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/record"
)

var errAmountScale = field.NewVerboseError(
	"Disputed Amount has incorrect number of decimal places",
	"Disputed Amount has incorrect number of decimal places (must match default decimal places for the given ISO 4217 currency code)",
)

// Context runs the checks spanning several fields of an entry.
func Context(r *record.Record, _ struct{}) []*field.Error {
	if err := CheckAmountScale(r); err != nil {
		return []*field.Error{err}
	}
	return nil
}

// CheckAmountScale requires the Disputed Amount to be written with the
// default number of decimal places of its Currency, so JPY amounts have
// none and USD amounts two. It is muted when either value does not parse.
func CheckAmountScale(r *record.Record) *field.Error {
	unit, ok := field.ParseCurrency(r.Get(Currency))
	if !ok {
		return nil
	}
	amount, ok := field.ParseDecimal(r.Get(DisputedAmount))
	if !ok {
		return nil
	}
	if int(-amount.Exponent()) != field.FractionDigits(unit) {
		return errAmountScale
	}
	return nil
}
