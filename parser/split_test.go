package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSplit(t *testing.T) {
	t.Run("TrimsFields", func(t *testing.T) {
		fields, err := Split(" a , b,c ", 1, NewOptions())
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, fields)
	})

	t.Run("KeepsEmptyFields", func(t *testing.T) {
		fields, err := Split("a,,", 1, NewOptions())
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "", ""}, fields)
	})

	t.Run("StripsQuotes", func(t *testing.T) {
		fields, err := Split(`"P,20200101,,2.1"`, 1, NewOptions(WithQuotes(true)))
		assert.NoError(t, err)
		assert.Equal(t, []string{"P", "20200101", "", "2.1"}, fields)
	})

	t.Run("MissingQuotes", func(t *testing.T) {
		_, err := Split(`P,20200101,,2.1"`, 3, NewOptions(WithQuotes(true)))
		var format *FormatError
		assert.True(t, errors.As(err, &format))
		assert.Equal(t, 3, format.GetLine())
		assert.Equal(t, "line 3 is not comma-separated or not wrapped in quotation marks", err.Error())
	})

	t.Run("SingleQuoteCharacter", func(t *testing.T) {
		_, err := Split(`"`, 1, NewOptions(WithQuotes(true)))
		assert.Error(t, err)
	})

	t.Run("NoSeparator", func(t *testing.T) {
		_, err := Split("abc", 2, NewOptions())
		assert.EqualError(t, err, "line 2 is not comma-separated")
	})

	t.Run("NoSeparatorAllowed", func(t *testing.T) {
		fields, err := Split("abc", 2, NewOptions(WithMustSplit(false)))
		assert.NoError(t, err)
		assert.Equal(t, []string{"abc"}, fields)
	})

	t.Run("CustomSeparator", func(t *testing.T) {
		fields, err := Split("a|b", 1, NewOptions(WithSeparator('|')))
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, fields)

		_, err = Split("a,b", 1, NewOptions(WithSeparator('|')))
		assert.EqualError(t, err, "line 1 is not pipe-separated")
	})
}

func TestLines(t *testing.T) {
	source := "a,b\r\nc, d\ne,f\n"

	t.Run("NumbersLines", func(t *testing.T) {
		var got []Line
		for line, err := range Lines(strings.NewReader(source), NewOptions()) {
			assert.NoError(t, err)
			got = append(got, line)
		}
		assert.Equal(t, []Line{
			{No: 1, Fields: []string{"a", "b"}},
			{No: 2, Fields: []string{"c", "d"}},
			{No: 3, Fields: []string{"e", "f"}},
		}, got)
	})

	t.Run("MatchesReadAll", func(t *testing.T) {
		rows, err := ReadAll(strings.NewReader(source), NewOptions())
		assert.NoError(t, err)

		var lazy [][]string
		for line, err := range Lines(strings.NewReader(source), NewOptions()) {
			assert.NoError(t, err)
			lazy = append(lazy, line.Fields)
		}
		assert.Equal(t, rows, lazy)
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		var lines, errs int
		for _, err := range Lines(strings.NewReader("a,b\nbad\nc,d\n"), NewOptions()) {
			if err != nil {
				errs++
				assert.EqualError(t, err, "line 2 is not comma-separated")
				continue
			}
			lines++
		}
		assert.Equal(t, 1, lines)
		assert.Equal(t, 1, errs)
	})

	t.Run("EarlyBreak", func(t *testing.T) {
		count := 0
		for range Lines(strings.NewReader(source), NewOptions()) {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	t.Run("ReadAllFails", func(t *testing.T) {
		_, err := ReadAll(strings.NewReader("a,b\nbad\n"), NewOptions())
		assert.Error(t, err)
	})
}
