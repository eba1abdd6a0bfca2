package chargeback

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/formatter"
	"github.com/robinvdvleuten/paymentsfiles/record"
)

// Entry holds the data of one disputed transaction.
type Entry struct {
	Status        DisputeStatus
	CaseNumber    string
	TransactionID string
	Currency      currency.Unit
	// DisputedAmount is written with the currency's default number of
	// decimal places. It cannot have more.
	DisputedAmount        decimal.Decimal
	Reason                Reason
	RepresentmentDeadline time.Time
	ReasonDescription     string
	// DisputeTime defaults to the time the entry is written.
	DisputeTime time.Time
}

// Validate checks the entry with the checks used when reading.
func (e Entry) Validate() error {
	typ := record.NewType("", "", DisputeStatusField, CaseNumber, TransactionID, ReasonField, ReasonDescription)
	r, err := record.New(typ, []string{string(e.Status), e.CaseNumber, e.TransactionID, string(e.Reason), e.ReasonDescription}, 0)
	if err != nil {
		return err
	}
	if errs := r.Validate(); len(errs) > 0 {
		return &EntryFieldError{Field: errs[0]}
	}
	if _, ok := formatter.Fixed(e.DisputedAmount, field.FractionDigits(e.Currency)); !ok {
		return ErrAmountScale
	}
	return nil
}

func (e Entry) fields(now time.Time) ([]string, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	amount, _ := formatter.Fixed(e.DisputedAmount, field.FractionDigits(e.Currency))
	disputed := e.DisputeTime
	if disputed.IsZero() {
		disputed = now
	}
	return []string{
		string(e.Status),
		e.CaseNumber,
		e.TransactionID,
		formatter.Instant(disputed),
		e.Currency.String(),
		amount,
		string(e.Reason),
		formatter.ISODate(e.RepresentmentDeadline),
		e.ReasonDescription,
	}, nil
}

// Writer generates a chargeback file. The column names are written with
// the first entry, so a writer without entries writes nothing.
type Writer struct {
	w      io.Writer
	lines  *formatter.Formatter
	now    func() time.Time
	header bool
	closed bool
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, lines: formatter.New(), now: time.Now}
}

// AddEntry writes e.
func (w *Writer) AddEntry(e Entry) error {
	if w.closed {
		return ErrClosed
	}
	line, err := e.fields(w.now())
	if err != nil {
		return err
	}
	if !w.header {
		if err := w.lines.WriteLine(w.w, Schema.Names()...); err != nil {
			return err
		}
		w.header = true
	}
	return w.lines.WriteLine(w.w, line...)
}

// Close stops the writer. It does not close the underlying writer.
func (w *Writer) Close() error {
	w.closed = true
	return nil
}
