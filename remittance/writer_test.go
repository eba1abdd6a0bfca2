package remittance

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/robinvdvleuten/paymentsfiles/formatter"
	"github.com/robinvdvleuten/paymentsfiles/parser"
)

var created = time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func testDeposit(total string) Deposit {
	return Deposit{
		Date:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		AccountName:    "Acme Corp",
		AccountNumber:  "12345678",
		VendorID:       "VENDOR1",
		EffectiveDate:  time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		BankTransferID: "BT-1",
		Currency:       currency.USD,
		Amount:         amount(total),
	}
}

func testTransaction(id, value string) Transaction {
	return Transaction{
		Method:               "C",
		Type:                 "S",
		ID:                   id,
		Currency:             currency.USD,
		Amount:               amount(value),
		ProcessingDivisionID: "DIV-1",
	}
}

func TestWriter(t *testing.T) {
	t.Run("WritesFile", func(t *testing.T) {
		var buf strings.Builder
		w := NewWriter(&buf, WithCreationTime(created))
		assert.NoError(t, w.AddDeposit(testDeposit("100")))
		assert.NoError(t, w.AddTransaction(testTransaction("TX-1", "40")))
		assert.NoError(t, w.AddTransaction(testTransaction("TX-2", "60.00")))
		assert.NoError(t, w.Close())

		assert.Equal(t, quoted(header, deposit, record1, record2, dtrail, trailer), buf.String())
	})

	t.Run("Unquoted", func(t *testing.T) {
		var buf strings.Builder
		w := NewWriter(&buf, WithCreationTime(created), WithQuotes(false))
		assert.NoError(t, w.AddDeposit(testDeposit("40")))
		assert.NoError(t, w.AddTransaction(testTransaction("TX-1", "40")))
		assert.NoError(t, w.Close())
		assert.True(t, strings.HasPrefix(buf.String(), header+"\n"))
	})

	t.Run("NothingAdded", func(t *testing.T) {
		var buf strings.Builder
		assert.NoError(t, NewWriter(&buf).Close())
		assert.Equal(t, "", buf.String())
	})

	t.Run("NoDeposit", func(t *testing.T) {
		w := NewWriter(&strings.Builder{})
		assert.True(t, errors.Is(w.AddTransaction(testTransaction("TX-1", "1")), ErrNoDeposit))
	})

	t.Run("EmptyDeposit", func(t *testing.T) {
		w := NewWriter(&strings.Builder{})
		assert.NoError(t, w.AddDeposit(testDeposit("1")))
		assert.True(t, errors.Is(w.AddDeposit(testDeposit("1")), ErrEmptyDeposit))
		assert.True(t, errors.Is(w.Close(), ErrEmptyDeposit))
	})

	t.Run("AmountSum", func(t *testing.T) {
		w := NewWriter(&strings.Builder{})
		assert.NoError(t, w.AddDeposit(testDeposit("100")))
		assert.NoError(t, w.AddTransaction(testTransaction("TX-1", "99.99")))
		assert.True(t, errors.Is(w.Close(), ErrAmountSum))
	})

	t.Run("LargeDecimal", func(t *testing.T) {
		w := NewWriter(&strings.Builder{})
		assert.True(t, errors.Is(w.AddDeposit(testDeposit("1.005")), formatter.ErrLargeDecimal))
		assert.NoError(t, w.AddDeposit(testDeposit("1")))
		assert.True(t, errors.Is(w.AddTransaction(testTransaction("TX-1", "12345678901234567")), formatter.ErrLargeDecimal))
	})

	t.Run("FieldChecks", func(t *testing.T) {
		d := testDeposit("1")
		d.AccountNumber = "not-a-number"
		err := NewWriter(&strings.Builder{}).AddDeposit(d)
		var ferr *EntryFieldError
		assert.True(t, errors.As(err, &ferr))
		assert.Equal(t, "Deposit Account Number must be numeric and cannot exceed 32 characters in length", err.Error())

		w := NewWriter(&strings.Builder{})
		assert.NoError(t, w.AddDeposit(testDeposit("1")))
		tx := testTransaction(strings.Repeat("x", 101), "1")
		assert.EqualError(t, w.AddTransaction(tx), "Transaction ID cannot exceed 100 characters in length")

		tx = testTransaction("TX-1", "1")
		tx.Type = "FXF"
		assert.Contains(t, w.AddTransaction(tx).Error(), "Transaction Type must be one of the following options")

		dlocal := NewWriter(&strings.Builder{}, WithFileClass(ClassDLocal))
		assert.NoError(t, dlocal.AddDeposit(testDeposit("1")))
		assert.NoError(t, dlocal.AddTransaction(tx))
	})

	t.Run("SeparatorInValue", func(t *testing.T) {
		w := NewWriter(&strings.Builder{})
		d := testDeposit("1")
		d.AccountName = "Acme, Inc"
		assert.NoError(t, w.AddDeposit(d))
		err := w.AddTransaction(testTransaction("TX-1", "1"))
		assert.True(t, errors.Is(err, formatter.ErrSeparatorInField))
	})

	t.Run("FXStandard", func(t *testing.T) {
		fx := testDeposit("1")
		fx.FXPresentmentCurrency = ptr(currency.EUR)
		fx.FXPresentmentAmount = ptr(amount("0.92"))

		w := NewWriter(&strings.Builder{}, WithFX(FXStandard))
		assert.NoError(t, w.AddDeposit(fx))
		assert.True(t, errors.Is(w.AddTransaction(testTransaction("TX-1", "1")), ErrFXFields))

		tx := testTransaction("TX-1", "1")
		tx.Direction = "D"
		tx.FXPresentmentCurrency = ptr(currency.EUR)
		tx.FXPresentmentAmount = ptr(amount("0.92"))
		assert.True(t, errors.Is(w.AddTransaction(tx), ErrFXRate))

		tx.FXRate = ptr(amount("1.087"))
		assert.NoError(t, w.AddTransaction(tx))
	})

	t.Run("FXRecords", func(t *testing.T) {
		w := NewWriter(&strings.Builder{}, WithFX(FXRecords))
		assert.NoError(t, w.AddDeposit(testDeposit("1")))
		assert.True(t, errors.Is(w.AddTransaction(testTransaction("TX-1", "1")), ErrFXFields))
	})

	t.Run("Closed", func(t *testing.T) {
		w := NewWriter(&strings.Builder{})
		assert.NoError(t, w.Close())
		assert.True(t, errors.Is(w.AddDeposit(testDeposit("1")), ErrClosed))
		assert.NoError(t, w.Close())
	})
}

func TestRoundTrip(t *testing.T) {
	for _, fx := range []FXPolicy{FXNone, FXStandard, FXRecords} {
		t.Run(string(fx), func(t *testing.T) {
			rate := ptr(amount("1.087"))
			d1 := testDeposit("100")
			d1.FXPresentmentCurrency = ptr(currency.EUR)
			d1.FXPresentmentAmount = ptr(amount("92"))
			d1.FXRate = rate
			d2 := testDeposit("-5.5")
			d2.Date = d2.Date.AddDate(0, 0, 3)
			d2.Currency = currency.JPY
			d2.FXPresentmentCurrency = ptr(currency.EUR)
			d2.FXPresentmentAmount = ptr(amount("-0.03"))

			fxTx := func(id, value string) Transaction {
				tx := testTransaction(id, value)
				tx.Direction = "W"
				tx.FXPresentmentCurrency = ptr(currency.EUR)
				tx.FXPresentmentAmount = ptr(amount("1"))
				tx.FXRate = rate
				return tx
			}

			path := filepath.Join(t.TempDir(), "remittance.csv")
			f, err := os.Create(path)
			assert.NoError(t, err)

			w := NewWriter(f, WithCreationTime(created), WithFX(fx))
			assert.NoError(t, w.AddDeposit(d1))
			assert.NoError(t, w.AddTransaction(fxTx("TX-1", "40")))
			assert.NoError(t, w.AddTransaction(fxTx("TX-2", "60")))
			assert.NoError(t, w.AddDeposit(d2))
			assert.NoError(t, w.AddTransaction(fxTx("TX-3", "-5.50")))
			assert.NoError(t, w.Close())
			assert.NoError(t, f.Close())

			for line, err := range NewValidator(WithFX(fx)).Validate(context.Background(), path) {
				assert.NoError(t, err)
				t.Errorf("unexpected error line %d: %v", line.Line, line.Errors)
			}

			data, err := os.ReadFile(path)
			assert.NoError(t, err)
			rows, err := parser.ReadAll(strings.NewReader(string(data)), parser.NewOptions(parser.WithQuotes(true)))
			assert.NoError(t, err)
			assert.Equal(t, 9, len(rows))
			assert.Equal(t, []string{"D", "20240301", "Acme Corp", "12345678", "VENDOR1", "20240302", "BT-1", "USD", "100.00", "1", "EUR", "92.00", "1.087"}, rows[1])
			assert.Equal(t, []string{"R", "C", "S", "TX-3", "USD", "-5.50", "DIV-1", "W", "EUR", "1.00", "1.087"}, rows[6])
			assert.Equal(t, []string{"E", "20240304", "1"}, rows[7])
			assert.Equal(t, []string{"T", "2"}, rows[8])
		})
	}
}
