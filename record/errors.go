package record

import "fmt"

// UnknownTypeError is returned when a line's first value is not a known tag.
type UnknownTypeError struct {
	Line  int
	Tag   string
	Valid string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("the record type %q at line %d is invalid--valid record types are %s", e.Tag, e.Line, e.Valid)
}

func (e *UnknownTypeError) GetLine() int {
	return e.Line
}

// WidthError is returned when a line's field count differs from its type's.
type WidthError struct {
	Line int
	Type string
	Want int
	Got  int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("the %s entry at line %d should have %d columns", e.Type, e.Line, e.Want)
}

func (e *WidthError) GetLine() int {
	return e.Line
}

// FieldsAndValuesError is returned by New when fields and values differ in length.
type FieldsAndValuesError struct {
	Line   int
	Fields int
	Values int
}

func (e *FieldsAndValuesError) Error() string {
	return fmt.Sprintf("line %d: %d fields and %d values passed to record have different lengths", e.Line, e.Fields, e.Values)
}

func (e *FieldsAndValuesError) GetLine() int {
	return e.Line
}
