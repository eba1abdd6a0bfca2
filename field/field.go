// Package field describes the columns of a delimited payments file and the
// checks applied to their values.
//
// A Schema is plain data: a name, a requirement policy and an optional
// Check. Schemas are declared once per file family and grouped into record
// types by the record package.
package field

// Requirement describes when a field must be non-empty.
type Requirement string

const (
	// Always marks a field that can never be left empty.
	Always Requirement = "always"
	// Never marks a field that may always be left empty.
	Never Requirement = "never"
)

// Conditional returns a requirement that only becomes mandatory when a
// caller puts it in the mandatory set passed to record validation.
func Conditional(tag string) Requirement {
	return Requirement("conditional:" + tag)
}

// Check validates a single, non-empty field value.
// It returns nil when the value is acceptable.
type Check func(name, value string) *Error

// Schema describes one column of a record type.
type Schema struct {
	Name     string
	Required Requirement
	Check    Check
}

// New creates a field schema. A nil check means the value is only subject
// to its requirement.
func New(name string, required Requirement, check Check) *Schema {
	return &Schema{Name: name, Required: required, Check: check}
}

// Validate runs the schema's check against value, if one is attached.
func (s *Schema) Validate(value string) *Error {
	if s.Check == nil {
		return nil
	}
	return s.Check(s.Name, value)
}
