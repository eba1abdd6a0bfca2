package remittance

import (
	"fmt"

	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/record"
)

// ContextCheck checks a record against the state accumulated before it.
type ContextCheck func(r *record.Record, s Stats) *field.Error

var (
	recordChecks         = []ContextCheck{CheckFXRate, CheckTransactionType}
	depositTrailerChecks = []ContextCheck{CheckDepositDates, CheckNumberOfRecords, CheckDepositAmount}
	trailerChecks        = []ContextCheck{CheckNumberOfDeposits}
)

// Context runs the context checks of r's record type. Each check is muted
// on its own when the value it compares cannot be parsed; the others still
// run.
func Context(r *record.Record, s Stats) []*field.Error {
	var checks []ContextCheck
	switch r.Type() {
	case DepositRecord:
		checks = recordChecks
	case DepositTrailer:
		checks = depositTrailerChecks
	case Trailer:
		checks = trailerChecks
	}

	var errs []*field.Error
	for _, check := range checks {
		if err := check(r, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// CheckFXRate requires a Transaction FX Rate where the FX policy asks for
// one. Under FXStandard the deposit header's FX Rate is enough.
func CheckFXRate(r *record.Record, s Stats) *field.Error {
	rate := r.Get(RecordFXRate)
	switch s.FX {
	case FXStandard:
		if rate == "" && (s.DepositHeader == nil || s.DepositHeader.Get(DepositFXRate) == "") {
			return errFXRate
		}
	case FXRecords:
		if rate == "" {
			return errFXRate
		}
	}
	return nil
}

// CheckTransactionType limits Transaction Type to the choices of the file
// class. An empty value is left to the requiredness check.
func CheckTransactionType(r *record.Record, s Stats) *field.Error {
	value := r.Get(RecordTransactionType)
	if value == "" {
		return nil
	}
	return field.Choice(TransactionTypes(s.Class)...)(RecordTransactionType.Name, value)
}

// CheckDepositDates requires the deposit trailer's date to equal its
// header's. It is muted when either date is malformed.
func CheckDepositDates(r *record.Record, s Stats) *field.Error {
	if s.DepositHeader == nil {
		return nil
	}
	headerDate := s.DepositHeader.Get(DepositDate)
	trailerDate := r.Get(TrailerDepositDate)
	if DepositDate.Validate(headerDate) != nil || TrailerDepositDate.Validate(trailerDate) != nil {
		return nil
	}
	if headerDate != trailerDate {
		return errDifferingDepositDates
	}
	return nil
}

// CheckNumberOfRecords compares the deposit trailer's Number of Records
// with the records counted. It is muted when the count is not an integer.
func CheckNumberOfRecords(r *record.Record, s Stats) *field.Error {
	n, ok := field.ParseInt(r.Get(TrailerNumberOfRecords))
	if !ok || n == s.RecordCount {
		return nil
	}
	return errNumberOfRecords
}

// CheckDepositAmount compares the deposit header's amount with the sum of
// the deposit's record amounts. It is muted when the header amount cannot
// be parsed.
func CheckDepositAmount(_ *record.Record, s Stats) *field.Error {
	if s.DepositHeader == nil {
		return nil
	}
	raw := s.DepositHeader.Get(DepositAmount)
	amount, ok := field.ParseDecimal(raw)
	if !ok || amount.Equal(s.DepositAmountSum) {
		return nil
	}
	sum := s.DepositAmountSum.StringFixed(max(-s.DepositAmountSum.Exponent(), 2))
	return field.NewError(fmt.Sprintf("The Deposit Amount in the header was %s but the records summed to %s", raw, sum))
}

// CheckNumberOfDeposits compares the trailer's Number of Remittance Records
// with the deposits counted. It is muted when the count is not an integer.
func CheckNumberOfDeposits(r *record.Record, s Stats) *field.Error {
	n, ok := field.ParseInt(r.Get(FileTrailerNumberOfDeposits))
	if !ok || n == s.DepositCount {
		return nil
	}
	return errNumberOfDeposits
}

var (
	errFXRate = field.NewError("Transaction FX Rate must be specified if FX Rate is left blank in the Deposit Header")

	errDifferingDepositDates = field.NewError("The Deposit Date in the Deposit Trailer must match the corresponding Deposit Header")

	errNumberOfRecords = field.NewVerboseError(
		"Number of Records in deposit trailer does not match the deposit",
		`Number of Records in deposit trailer is incorrect (should be equal to the number of Deposit Record, "R", entries for the deposit)`,
	)

	errNumberOfDeposits = field.NewVerboseError(
		"Number of Remittance Records in trailer does not match the file",
		`Number of Remittance Records in the trailer is incorrect (should be equal to the number of Deposit Header, "D", records for the remittance)`,
	)
)
