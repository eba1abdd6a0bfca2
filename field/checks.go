package field

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
)

// NonEmpty rejects empty values.
func NonEmpty(name, value string) *Error {
	if value == "" {
		return EmptyError(name)
	}
	return nil
}

// MaxLength rejects values longer than max characters.
func MaxLength(max int) Check {
	return func(name, value string) *Error {
		if utf8.RuneCountInString(value) > max {
			return lengthError(name, max)
		}
		return nil
	}
}

// Choice rejects values that are not one of choices.
func Choice(choices ...string) Check {
	return func(name, value string) *Error {
		if slices.Contains(choices, value) {
			return nil
		}
		return choiceError(name, choices)
	}
}

// Integer rejects values that do not parse as a 32-bit integer.
func Integer(name, value string) *Error {
	if _, ok := ParseInt(value); !ok {
		return integerError(name)
	}
	return nil
}

// Decimal rejects values that do not parse as a decimal number.
func Decimal(name, value string) *Error {
	if _, ok := ParseDecimal(value); !ok {
		return decimalError(name)
	}
	return nil
}

// Currency rejects values that are not an ISO 4217 currency code.
func Currency(name, value string) *Error {
	if _, ok := ParseCurrency(value); !ok {
		return currencyError(name)
	}
	return nil
}

// ASCII rejects values containing characters outside the ASCII range.
func ASCII(name, value string) *Error {
	for i := 0; i < len(value); i++ {
		if value[i] > 127 {
			return asciiError(name)
		}
	}
	return nil
}

// DateTime rejects values that do not parse with layout. The pattern is the
// human-readable form of the layout shown in the error message, for
// example "yyyyMMdd" for the layout "20060102".
func DateTime(layout, pattern string) Check {
	return func(name, value string) *Error {
		if _, err := time.Parse(layout, value); err != nil {
			return dateTimeError(name, pattern)
		}
		return nil
	}
}

// Pattern rejects values not fully matched by expr. The supplied error is
// reported as is.
func Pattern(expr string, fail func(name string) *Error) Check {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	return func(name, value string) *Error {
		if re.MatchString(value) {
			return nil
		}
		return fail(name)
	}
}

// Equals rejects values other than want.
func Equals(want string, fail func(name string) *Error) Check {
	return func(name, value string) *Error {
		if value == want {
			return nil
		}
		return fail(name)
	}
}

// All combines checks, reporting the first failure.
func All(checks ...Check) Check {
	return func(name, value string) *Error {
		for _, check := range checks {
			if err := check(name, value); err != nil {
				return err
			}
		}
		return nil
	}
}

// ParseInt parses a 32-bit integer, reporting whether it succeeded.
func ParseInt(value string) (int, bool) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// ParseDecimal parses a decimal number, reporting whether it succeeded.
func ParseDecimal(value string) (decimal.Decimal, bool) {
	if value == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseCurrency parses an upper-case ISO 4217 currency code.
func ParseCurrency(value string) (currency.Unit, bool) {
	if len(value) != 3 || strings.ToUpper(value) != value {
		return currency.Unit{}, false
	}
	unit, err := currency.ParseISO(value)
	if err != nil {
		return currency.Unit{}, false
	}
	return unit, true
}

// FractionDigits returns the default number of decimal places for unit.
func FractionDigits(unit currency.Unit) int {
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}
