package field

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestChecks(t *testing.T) {
	t.Run("NonEmpty", func(t *testing.T) {
		assert.Zero(t, NonEmpty("Case Number", "123"))
		err := NonEmpty("Case Number", "")
		assert.NotZero(t, err)
		assert.Equal(t, "Case Number cannot be empty", err.Short)
	})

	t.Run("MaxLength", func(t *testing.T) {
		check := MaxLength(5)
		assert.Zero(t, check("Name", "abcde"))
		err := check("Name", "abcdef")
		assert.NotZero(t, err)
		assert.Equal(t, "Name cannot exceed 5 characters in length", err.Short)
	})

	t.Run("Choice", func(t *testing.T) {
		check := Choice("Won", "Lost")
		assert.Zero(t, check("Dispute Status", "Won"))
		err := check("Dispute Status", "won")
		assert.NotZero(t, err)
		assert.Equal(t, "Dispute Status must be one of the following options: Won, Lost", err.Short)
	})

	t.Run("Integer", func(t *testing.T) {
		assert.Zero(t, Integer("Count", "42"))
		assert.Zero(t, Integer("Count", "-7"))
		assert.NotZero(t, Integer("Count", "abc"))
		assert.NotZero(t, Integer("Count", "4.2"))
		assert.NotZero(t, Integer("Count", "99999999999"))
	})

	t.Run("Decimal", func(t *testing.T) {
		assert.Zero(t, Decimal("Amount", "10.25"))
		assert.Zero(t, Decimal("Amount", "-3"))
		assert.NotZero(t, Decimal("Amount", "ten"))
	})

	t.Run("Currency", func(t *testing.T) {
		assert.Zero(t, Currency("Currency", "USD"))
		assert.Zero(t, Currency("Currency", "JPY"))
		assert.NotZero(t, Currency("Currency", "usd"))
		assert.NotZero(t, Currency("Currency", "DOLLARS"))
		assert.NotZero(t, Currency("Currency", "QQQ"))
	})

	t.Run("ASCII", func(t *testing.T) {
		assert.Zero(t, ASCII("Description", "plain text"))
		err := ASCII("Description", "café")
		assert.NotZero(t, err)
		assert.Equal(t, "Description can only contain ASCII characters", err.Short)
	})

	t.Run("DateTime", func(t *testing.T) {
		check := DateTime("20060102", "yyyyMMdd")
		assert.Zero(t, check("Deposit Date", "20200531"))
		assert.NotZero(t, check("Deposit Date", "2020-05-31"))
		assert.NotZero(t, check("Deposit Date", "20201331"))
		assert.Equal(t, "Deposit Date has improper date-time format (must be <yyyyMMdd>)", check("Deposit Date", "x").Short)
	})

	t.Run("Pattern", func(t *testing.T) {
		check := Pattern(`\d{1,3}`, func(name string) *Error { return NewError(name + " is bad") })
		assert.Zero(t, check("Digits", "123"))
		assert.NotZero(t, check("Digits", "1234"))
		assert.NotZero(t, check("Digits", "12a"))
	})

	t.Run("All", func(t *testing.T) {
		check := All(MaxLength(4), ASCII)
		assert.Zero(t, check("Text", "abcd"))
		assert.Equal(t, "Text cannot exceed 4 characters in length", check("Text", "abcdé").Short)
		assert.Equal(t, "Text can only contain ASCII characters", check("Text", "é").Short)
	})
}

func TestFractionDigits(t *testing.T) {
	usd, ok := ParseCurrency("USD")
	assert.True(t, ok)
	assert.Equal(t, 2, FractionDigits(usd))

	jpy, ok := ParseCurrency("JPY")
	assert.True(t, ok)
	assert.Equal(t, 0, FractionDigits(jpy))
}

func TestErrorMessage(t *testing.T) {
	err := NewVerboseError("short", "long")
	assert.Equal(t, "short", err.Message(false))
	assert.Equal(t, "long", err.Message(true))
	assert.Equal(t, "short", err.Error())

	same := NewError("only")
	assert.Equal(t, "only", same.Message(true))
}
