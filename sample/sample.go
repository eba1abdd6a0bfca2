// Package sample generates synthetic payments files for testing and
// profiling. The same seed always produces the same file.
package sample

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/robinvdvleuten/paymentsfiles/chargeback"
	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/formatter"
	"github.com/robinvdvleuten/paymentsfiles/remittance"
)

// namespace scopes the generated identifiers.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/robinvdvleuten/paymentsfiles/sample"))

var (
	accountNames = []string{"Acme Corp", "Globex", "Initech", "Umbrella", "Hooli", "Stark Industries"}
	divisions    = []string{"DIV-NA", "DIV-EU", "DIV-APAC", "DIV-LATAM"}
	remitted     = []currency.Unit{currency.USD, currency.EUR, currency.GBP, currency.CAD}
	disputed     = []currency.Unit{currency.USD, currency.EUR, currency.JPY, currency.MustParseISO("BHD")}
	descriptions = []string{
		"Customer doesn't recognize charge",
		"Item never arrived",
		"Charged twice",
		"",
	}
	fxRates = []string{"0.92", "1.0850", "1.27", "145.3"}
)

// Start is the default date generated files begin at.
var Start = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type generator struct {
	rng   *rand.Rand
	start time.Time
	ids   int
}

func newGenerator(seed uint64, start time.Time) *generator {
	if start.IsZero() {
		start = Start
	}
	return &generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), start: start}
}

// id returns the next identifier, unique within a file.
func (g *generator) id(prefix string) string {
	g.ids++
	u := uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%s-%d-%d", prefix, g.rng.Uint64(), g.ids)))
	return prefix + "-" + strings.ReplaceAll(u.String(), "-", "")[:24]
}

func pick[T any](g *generator, values []T) T {
	return values[g.rng.IntN(len(values))]
}

// amount returns a positive amount with digits decimal places.
func (g *generator) amount(digits int) decimal.Decimal {
	return decimal.New(int64(g.rng.IntN(100_000)+100), -int32(digits))
}

// RemittanceOptions configures a generated remittance file.
type RemittanceOptions struct {
	Seed     uint64
	Deposits int
	// Records is the number of records per deposit.
	Records int
	Start   time.Time
	Quotes  bool
	Class   remittance.FileClass
	FX      remittance.FXPolicy
}

// Remittance writes a remittance file that passes validation with the
// same quoting, class and FX policy.
func Remittance(w io.Writer, opts RemittanceOptions) error {
	if opts.Deposits < 1 || opts.Records < 1 {
		return fmt.Errorf("a remittance file needs at least one deposit with one record")
	}
	g := newGenerator(opts.Seed, opts.Start)
	class := opts.Class
	if class == "" {
		class = remittance.ClassStandard
	}
	if opts.FX == "" {
		opts.FX = remittance.FXNone
	}
	types := remittance.TransactionTypes(class)

	rw := remittance.NewWriter(w,
		remittance.WithQuotes(opts.Quotes),
		remittance.WithFileClass(class),
		remittance.WithFX(opts.FX),
		remittance.WithCreationTime(g.start),
	)

	for d := range opts.Deposits {
		unit := pick(g, remitted)
		fx := opts.FX != remittance.FXNone
		rate := decimal.RequireFromString(pick(g, fxRates))
		presentment := currency.JPY

		txs := make([]remittance.Transaction, opts.Records)
		total := decimal.Zero
		for i := range txs {
			tx := remittance.Transaction{
				Method:               pick(g, remittance.TransactionMethods),
				Type:                 pick(g, types),
				ID:                   g.id("TX"),
				Currency:             unit,
				Amount:               g.amount(formatter.MonetaryPrecision),
				ProcessingDivisionID: pick(g, divisions),
			}
			if fx {
				presented := tx.Amount.Mul(rate).Round(formatter.MonetaryPrecision)
				tx.Direction = pick(g, remittance.Directions)
				tx.FXPresentmentCurrency = &presentment
				tx.FXPresentmentAmount = &presented
				tx.FXRate = &rate
			}
			total = total.Add(tx.Amount)
			txs[i] = tx
		}

		day := g.start.AddDate(0, 0, d)
		deposit := remittance.Deposit{
			Date:           day,
			AccountName:    pick(g, accountNames),
			AccountNumber:  fmt.Sprintf("%010d", g.rng.IntN(1_000_000_000)),
			VendorID:       fmt.Sprintf("VENDOR%d", g.rng.IntN(10)+1),
			EffectiveDate:  day.AddDate(0, 0, 1),
			BankTransferID: g.id("BT"),
			Currency:       unit,
			Amount:         total,
		}
		if fx {
			presented := total.Mul(rate).Round(formatter.MonetaryPrecision)
			deposit.FXPresentmentCurrency = &presentment
			deposit.FXPresentmentAmount = &presented
			deposit.FXRate = &rate
		}

		if err := rw.AddDeposit(deposit); err != nil {
			return err
		}
		for _, tx := range txs {
			if err := rw.AddTransaction(tx); err != nil {
				return err
			}
		}
	}
	return rw.Close()
}

// ChargebackOptions configures a generated chargeback file.
type ChargebackOptions struct {
	Seed    uint64
	Entries int
	Start   time.Time
}

// Chargeback writes a chargeback file that passes validation.
func Chargeback(w io.Writer, opts ChargebackOptions) error {
	if opts.Entries < 1 {
		return fmt.Errorf("a chargeback file needs at least one entry")
	}
	g := newGenerator(opts.Seed, opts.Start)

	cw := chargeback.NewWriter(w)
	for i := range opts.Entries {
		unit := pick(g, disputed)
		disputedAt := g.start.Add(time.Duration(i) * 17 * time.Minute)
		entry := chargeback.Entry{
			Status:                pick(g, chargeback.DisputeStatuses),
			CaseNumber:            g.id("CBK"),
			TransactionID:         g.id("TX"),
			Currency:              unit,
			DisputedAmount:        g.amount(field.FractionDigits(unit)),
			Reason:                pick(g, chargeback.Reasons),
			RepresentmentDeadline: disputedAt.AddDate(0, 0, 30),
			ReasonDescription:     pick(g, descriptions),
			DisputeTime:           disputedAt,
		}
		if err := cw.AddEntry(entry); err != nil {
			return err
		}
	}
	return cw.Close()
}
