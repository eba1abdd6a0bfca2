package formatter

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Monetary limits of amounts in remittance files. Amounts are
// Number(18,2): at most 16 whole digits and 2 fraction digits.
const (
	MaxWholeDigits    = 16
	MonetaryPrecision = 2
)

// ErrLargeDecimal is returned when an amount does not fit Number(18,2).
var ErrLargeDecimal = errors.New("big decimal cannot exceed 16 digits before the decimal nor 2 digits after")

// Monetary renders d with exactly two fraction digits.
func Monetary(d decimal.Decimal) (string, error) {
	if scale(d) > MonetaryPrecision || wholeDigits(d) > MaxWholeDigits {
		return "", ErrLargeDecimal
	}
	return d.StringFixed(MonetaryPrecision), nil
}

// OptionalMonetary renders d like Monetary, or "" when d is nil.
func OptionalMonetary(d *decimal.Decimal) (string, error) {
	if d == nil {
		return "", nil
	}
	return Monetary(*d)
}

// Optional renders s, or "" when s is nil.
func Optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OptionalDecimal renders d as written, or "" when d is nil.
func OptionalDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// Fixed renders d with exactly digits fraction digits. ok is false when d
// has more fraction digits than that.
func Fixed(d decimal.Decimal, digits int) (string, bool) {
	if scale(d) > digits {
		return "", false
	}
	return d.StringFixed(int32(digits)), true
}

// Date renders t as yyyyMMdd.
func Date(t time.Time) string {
	return t.Format("20060102")
}

// Time renders t as HHmmss.
func Time(t time.Time) string {
	return t.Format("150405")
}

// ISODate renders t as yyyy-MM-dd.
func ISODate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Instant renders t in UTC with second precision, e.g. 2024-03-01T10:15:00Z.
func Instant(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// scale returns the number of significant fraction digits of d, so 1.50
// and 1.5 both have a scale of 1.
func scale(d decimal.Decimal) int {
	s := d.String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func wholeDigits(d decimal.Decimal) int {
	whole := d.Abs().Truncate(0)
	if whole.IsZero() {
		return 0
	}
	return len(whole.String())
}
