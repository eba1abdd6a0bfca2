package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/output"
	"github.com/robinvdvleuten/paymentsfiles/structure"
	"github.com/robinvdvleuten/paymentsfiles/validator"
)

// stubValidator yields lines and then fatal, when set.
type stubValidator struct {
	lines []validator.ErrorLine
	fatal error
}

func (s stubValidator) Validate(_ context.Context, name string) iter.Seq2[validator.ErrorLine, error] {
	return func(yield func(validator.ErrorLine, error) bool) {
		for _, line := range s.lines {
			if !yield(line, nil) {
				return
			}
		}
		if s.fatal != nil {
			yield(validator.ErrorLine{}, &validator.FatalError{Source: name, Err: s.fatal})
		}
	}
}

var (
	amountErr = field.NewVerboseError("Deposit Amount not a proper numeric decimal value", "Deposit Amount not a proper decimal value (long)")
	dateErr   = field.NewError("Deposit Date has improper date-time format (must be <yyyyMMdd>)")
)

func twoLines() []validator.ErrorLine {
	return []validator.ErrorLine{
		{Line: 2, Errors: []*field.Error{amountErr}},
		{Line: 5, Errors: []*field.Error{amountErr, dateErr}},
	}
}

func TestTextDirector(t *testing.T) {
	t.Run("Pass", func(t *testing.T) {
		var b bytes.Buffer
		d := NewTextDirector(&b, WithStyles(output.Plain(&b)))
		result := NewController(stubValidator{}, d).Validate(context.Background(), "in/deposits.csv")
		assert.True(t, result.Passed())
		assert.Equal(t, "deposits.csv", result.Name)
		assert.Equal(t, "* * * * *\nChecking Errors for deposits.csv\n* * * * *\n\nPass: no errors found\n\n", b.String())
	})

	t.Run("ErrorLines", func(t *testing.T) {
		var b bytes.Buffer
		d := NewTextDirector(&b, WithStyles(output.Plain(&b)))
		result := NewController(stubValidator{lines: twoLines()}, d).Validate(context.Background(), "deposits.csv")
		assert.False(t, result.Passed())
		assert.Equal(t, 2, result.ErrorLines)
		assert.Equal(t, 3, result.Errors)

		want := strings.Join([]string{
			"* * * * *",
			"Checking Errors for deposits.csv",
			"* * * * *",
			"",
			"1 error found in line #2:",
			"--> Deposit Amount not a proper numeric decimal value",
			"",
			"2 errors found in line #5:",
			"--> Deposit Amount not a proper numeric decimal value",
			"--> Deposit Date has improper date-time format (must be <yyyyMMdd>)",
			"",
			"",
		}, "\n")
		assert.Equal(t, want, b.String())
	})

	t.Run("Verbose", func(t *testing.T) {
		var b bytes.Buffer
		d := NewTextDirector(&b, WithStyles(output.Plain(&b)), WithVerbose(true))
		NewController(stubValidator{lines: twoLines()[:1]}, d).Validate(context.Background(), "deposits.csv")
		assert.Contains(t, b.String(), "--> Deposit Amount not a proper decimal value (long)\n")
	})

	t.Run("Fatal", func(t *testing.T) {
		var b bytes.Buffer
		d := NewTextDirector(&b, WithStyles(output.Plain(&b)))
		fatal := &structure.Error{Kind: structure.KindEnd, Line: 7}
		result := NewController(stubValidator{lines: twoLines()[:1], fatal: fatal}, d).Validate(context.Background(), "deposits.csv")
		assert.False(t, result.Passed())
		assert.True(t, errors.Is(result.Fatal, fatal))
		assert.Contains(t, b.String(), "Fatal error: "+fatal.Error()+"\n\n")
		assert.NotContains(t, b.String(), "Pass:")
	})

	t.Run("LongNameTruncated", func(t *testing.T) {
		var b bytes.Buffer
		d := NewTextDirector(&b, WithStyles(output.Plain(&b)))
		d.Setup(strings.Repeat("界", 40) + ".csv")
		assert.Contains(t, b.String(), strings.Repeat("界", 28)+"...\n")
	})
}

func TestJSONDirector(t *testing.T) {
	t.Run("Documents", func(t *testing.T) {
		var b bytes.Buffer
		d := NewJSONDirector(&b, false)
		c := NewController(stubValidator{lines: twoLines()}, d)
		c.Validate(context.Background(), "deposits.csv")
		NewController(stubValidator{}, d).Validate(context.Background(), "-")

		dec := json.NewDecoder(&b)
		var first, second FileJSON
		assert.NoError(t, dec.Decode(&first))
		assert.NoError(t, dec.Decode(&second))

		assert.Equal(t, FileJSON{
			File:   "deposits.csv",
			Passed: false,
			Lines: []LineJSON{
				{Line: 2, Errors: []string{amountErr.Short}},
				{Line: 5, Errors: []string{amountErr.Short, dateErr.Short}},
			},
		}, first)
		assert.Equal(t, FileJSON{File: "<stdin>", Passed: true, Lines: []LineJSON{}}, second)
	})

	t.Run("Fatal", func(t *testing.T) {
		var b bytes.Buffer
		fatal := &structure.Error{Kind: structure.KindStart, Line: 1}
		NewController(stubValidator{fatal: fatal}, NewJSONDirector(&b, false)).Validate(context.Background(), "deposits.csv")

		var doc FileJSON
		assert.NoError(t, json.Unmarshal(b.Bytes(), &doc))
		assert.False(t, doc.Passed)
		assert.Equal(t, &FatalJSON{Message: fatal.Error(), Line: 1}, doc.Fatal)
	})
}

func TestSummary(t *testing.T) {
	var b bytes.Buffer
	Summary(&b, []Result{
		{Name: "a.csv"},
		{Name: "b.csv", ErrorLines: 2, Errors: 3},
		{Name: "c.csv", Fatal: &validator.FatalError{Source: "c.csv", Err: errors.New("the specified chargeback has no entries")}},
	})
	out := b.String()
	assert.Contains(t, out, "a.csv")
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "the specified chargeback has no entries")
	assert.NotContains(t, out, "c.csv: the specified")
	assert.Contains(t, out, "3 files")
	assert.Contains(t, out, "2 failed")
	assert.NotContains(t, out, "FILES")
}
