// Package record binds field schemas to the values of a single line.
package record

import (
	"github.com/robinvdvleuten/paymentsfiles/field"
)

// Type is an ordered list of field schemas selected by a discriminator tag.
// Field order is the expected column order.
type Type struct {
	Tag    string
	Name   string
	Fields []*field.Schema
}

// NewType creates a record type.
func NewType(tag, name string, fields ...*field.Schema) *Type {
	return &Type{Tag: tag, Name: name, Fields: fields}
}

// Width returns the number of columns a line of this type must have.
func (t *Type) Width() int {
	return len(t.Fields)
}

// Names returns the field names in column order.
func (t *Type) Names() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// index returns the column of f, or -1.
func (t *Type) index(f *field.Schema) int {
	for i, candidate := range t.Fields {
		if candidate == f {
			return i
		}
	}
	return -1
}

// Record is one line of a file bound positionally to its type.
type Record struct {
	typ    *Type
	values []string
	line   int
}

// New binds values to typ. It fails when the number of values differs from
// the number of fields.
func New(typ *Type, values []string, line int) (*Record, error) {
	if len(values) != len(typ.Fields) {
		return nil, &FieldsAndValuesError{Line: line, Fields: len(typ.Fields), Values: len(values)}
	}
	return &Record{typ: typ, values: values, line: line}, nil
}

// Type returns the record's type.
func (r *Record) Type() *Type { return r.typ }

// Line returns the 1-indexed line number the record was read from.
func (r *Record) Line() int { return r.line }

// Values returns the record's values in column order.
func (r *Record) Values() []string { return r.values }

// Lookup returns the value of f and whether the record's type has it.
func (r *Record) Lookup(f *field.Schema) (string, bool) {
	i := r.typ.index(f)
	if i < 0 {
		return "", false
	}
	return r.values[i], true
}

// Get returns the value of f, or an empty string when the record's type
// does not have it.
func (r *Record) Get(f *field.Schema) string {
	v, _ := r.Lookup(f)
	return v
}
