package remittance

import (
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/record"
)

// Stats is the state accumulated while a file streams by. It is a value:
// Next returns a new Stats and never changes the receiver.
type Stats struct {
	Class FileClass
	FX    FXPolicy

	// RecordCount counts the records of the current deposit.
	RecordCount int
	// DepositCount counts the deposits seen so far.
	DepositCount int
	// DepositAmountSum sums the parseable amounts of the current deposit.
	DepositAmountSum decimal.Decimal
	// DepositHeader is the current deposit's header, nil before the first.
	DepositHeader *record.Record
}

// NewStats returns the state before the first record.
func NewStats(class FileClass, fx FXPolicy) Stats {
	return Stats{Class: class, FX: fx, DepositAmountSum: decimal.Zero}
}

// Next folds r into the state.
func (s Stats) Next(r *record.Record) Stats {
	switch r.Type() {
	case DepositHeader:
		s.RecordCount = 0
		s.DepositCount++
		s.DepositAmountSum = decimal.Zero
		s.DepositHeader = r
	case DepositRecord:
		s.RecordCount++
		// A malformed amount is reported by its field check.
		if amount, ok := field.ParseDecimal(r.Get(RecordAmount)); ok {
			s.DepositAmountSum = s.DepositAmountSum.Add(amount)
		}
	}
	return s
}
