package remittance

import (
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"

	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/formatter"
	"github.com/robinvdvleuten/paymentsfiles/parser"
	"github.com/robinvdvleuten/paymentsfiles/record"
)

// Deposit holds the data of a deposit header.
type Deposit struct {
	Date           time.Time
	AccountName    string
	AccountNumber  string
	VendorID       string
	EffectiveDate  time.Time
	BankTransferID string
	Currency       currency.Unit
	Amount         decimal.Decimal
	// Revision defaults to 1.
	Revision int

	FXPresentmentCurrency *currency.Unit
	FXPresentmentAmount   *decimal.Decimal
	FXRate                *decimal.Decimal
}

// IsFX reports whether the deposit carries foreign exchange presentment.
func (d Deposit) IsFX() bool {
	return d.FXPresentmentCurrency != nil && d.FXPresentmentAmount != nil
}

// Validate checks the free-text fields with the checks used when reading.
func (d Deposit) Validate() error {
	return checkValues(
		[]*field.Schema{DepositAccountName, DepositAccountNumber, DepositVendorID, DepositBankTransferID},
		[]string{d.AccountName, d.AccountNumber, d.VendorID, d.BankTransferID},
	)
}

func (d Deposit) fields() ([]string, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	amount, err := formatter.Monetary(d.Amount)
	if err != nil {
		return nil, err
	}
	fxAmount, err := formatter.OptionalMonetary(d.FXPresentmentAmount)
	if err != nil {
		return nil, err
	}
	revision := d.Revision
	if revision == 0 {
		revision = 1
	}
	return []string{
		DepositHeader.Tag,
		formatter.Date(d.Date),
		d.AccountName,
		d.AccountNumber,
		d.VendorID,
		formatter.Date(d.EffectiveDate),
		d.BankTransferID,
		d.Currency.String(),
		amount,
		strconv.Itoa(revision),
		optionalCurrency(d.FXPresentmentCurrency),
		fxAmount,
		formatter.OptionalDecimal(d.FXRate),
	}, nil
}

// Transaction holds the data of a deposit record.
type Transaction struct {
	// Method is one of TransactionMethods.
	Method string
	// Type is one of TransactionTypes for the writer's file class.
	Type                 string
	ID                   string
	Currency             currency.Unit
	Amount               decimal.Decimal
	ProcessingDivisionID string

	// Direction is one of Directions, or empty.
	Direction             string
	FXPresentmentCurrency *currency.Unit
	FXPresentmentAmount   *decimal.Decimal
	FXRate                *decimal.Decimal
}

// fxFilled reports whether every foreign exchange field but the rate is set.
func (t Transaction) fxFilled() bool {
	return t.Direction != "" && t.FXPresentmentCurrency != nil && t.FXPresentmentAmount != nil
}

// Validate checks the free-text and enumerated fields with the checks used
// when reading.
func (t Transaction) Validate(class FileClass) error {
	if err := checkValues(
		[]*field.Schema{RecordTransactionMethod, RecordTransactionID, RecordProcessingDivisionID, RecordDirection},
		[]string{t.Method, t.ID, t.ProcessingDivisionID, t.Direction},
	); err != nil {
		return err
	}
	if !slices.Contains(TransactionTypes(class), t.Type) {
		return &EntryFieldError{Field: field.Choice(TransactionTypes(class)...)(RecordTransactionType.Name, t.Type)}
	}
	return nil
}

func (t Transaction) fields(class FileClass) ([]string, error) {
	if err := t.Validate(class); err != nil {
		return nil, err
	}
	amount, err := formatter.Monetary(t.Amount)
	if err != nil {
		return nil, err
	}
	fxAmount, err := formatter.OptionalMonetary(t.FXPresentmentAmount)
	if err != nil {
		return nil, err
	}
	return []string{
		DepositRecord.Tag,
		t.Method,
		t.Type,
		t.ID,
		t.Currency.String(),
		amount,
		t.ProcessingDivisionID,
		t.Direction,
		optionalCurrency(t.FXPresentmentCurrency),
		fxAmount,
		formatter.OptionalDecimal(t.FXRate),
	}, nil
}

func optionalCurrency(u *currency.Unit) string {
	if u == nil {
		return ""
	}
	return u.String()
}

// checkValues validates values against fields as if they were a record,
// returning the first error.
func checkValues(fields []*field.Schema, values []string) error {
	r, err := record.New(record.NewType("", "", fields...), values, 0)
	if err != nil {
		return err
	}
	if errs := r.Validate(); len(errs) > 0 {
		return &EntryFieldError{Field: errs[0]}
	}
	return nil
}

// Writer generates a remittance file.
//
// The header is written with the first transaction and each deposit header
// with the deposit's first transaction. Close writes the last deposit
// trailer and the file trailer.
type Writer struct {
	settings
	w     io.Writer
	lines *formatter.Formatter

	started  bool
	closed   bool
	deposits int
	current  *openDeposit
}

type openDeposit struct {
	header  Deposit
	line    []string
	records int
	total   decimal.Decimal
	written bool
}

// NewWriter creates a Writer on w. WithQuotes, WithFileClass, WithFX and
// WithCreationTime apply; the FX policy decides which foreign exchange
// fields transactions must carry.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	s := newSettings(opts)
	return &Writer{
		settings: s,
		w:        w,
		lines:    formatter.New(parser.WithQuotes(s.quotes)),
	}
}

// AddDeposit closes the current deposit and starts a new one.
func (w *Writer) AddDeposit(d Deposit) error {
	if w.closed {
		return ErrClosed
	}
	line, err := d.fields()
	if err != nil {
		return err
	}
	if err := w.closeDeposit(); err != nil {
		return err
	}
	w.current = &openDeposit{header: d, line: line, total: decimal.Zero}
	w.deposits++
	return nil
}

// AddTransaction adds a record to the current deposit.
func (w *Writer) AddTransaction(t Transaction) error {
	if w.closed {
		return ErrClosed
	}
	if w.current == nil {
		return ErrNoDeposit
	}
	if err := w.checkFX(t); err != nil {
		return err
	}
	line, err := t.fields(w.class)
	if err != nil {
		return err
	}

	if !w.started {
		created := w.created
		if created.IsZero() {
			created = time.Now()
		}
		if err := w.lines.WriteLine(w.w, Header.Tag, formatter.Date(created), formatter.Time(created), FormatVersion); err != nil {
			return err
		}
		w.started = true
	}
	if !w.current.written {
		if err := w.lines.WriteLine(w.w, w.current.line...); err != nil {
			return err
		}
		w.current.written = true
	}
	if err := w.lines.WriteLine(w.w, line...); err != nil {
		return err
	}

	w.current.records++
	w.current.total = w.current.total.Add(t.Amount)
	return nil
}

func (w *Writer) checkFX(t Transaction) error {
	h := w.current.header
	switch w.fx {
	case FXStandard:
		if h.IsFX() && !t.fxFilled() {
			return ErrFXFields
		}
		if h.IsFX() && h.FXRate == nil && t.FXRate == nil {
			return ErrFXRate
		}
	case FXRecords:
		if !t.fxFilled() {
			return ErrFXFields
		}
		if t.FXRate == nil {
			return ErrFXRate
		}
	}
	return nil
}

func (w *Writer) closeDeposit() error {
	d := w.current
	if d == nil {
		return nil
	}
	if d.records == 0 {
		return ErrEmptyDeposit
	}
	if !d.header.Amount.Equal(d.total) {
		return ErrAmountSum
	}
	w.current = nil
	return w.lines.WriteLine(w.w, DepositTrailer.Tag, formatter.Date(d.header.Date), strconv.Itoa(d.records))
}

// Close writes the trailers. A writer that received no transaction writes
// nothing.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if !w.started {
		if w.current != nil {
			return ErrEmptyDeposit
		}
		return nil
	}
	if err := w.closeDeposit(); err != nil {
		return err
	}
	return w.lines.WriteLine(w.w, Trailer.Tag, strconv.Itoa(w.deposits))
}
