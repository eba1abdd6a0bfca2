package record

import (
	"fmt"
	"strings"
)

// Registry resolves record types by their discriminator tag.
type Registry struct {
	types []*Type
	byTag map[string]*Type
}

// NewRegistry creates a registry of types. Tags must be unique.
func NewRegistry(types ...*Type) *Registry {
	r := &Registry{byTag: make(map[string]*Type, len(types))}
	for _, t := range types {
		if _, dup := r.byTag[t.Tag]; dup {
			panic(fmt.Sprintf("record: duplicate tag %q", t.Tag))
		}
		r.types = append(r.types, t)
		r.byTag[t.Tag] = t
	}
	return r
}

// Resolve returns the type registered for tag.
func (r *Registry) Resolve(tag string) (*Type, bool) {
	t, ok := r.byTag[tag]
	return t, ok
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []*Type {
	return r.types
}

// Describe lists the registered tags, e.g. `P for Header, D for DepositHeader`.
func (r *Registry) Describe() string {
	parts := make([]string, len(r.types))
	for i, t := range r.types {
		parts[i] = t.Tag + " for " + t.Name
	}
	return strings.Join(parts, ", ")
}

// ResolveLine returns the type of a split line, selected by its first value.
func (r *Registry) ResolveLine(line int, values []string) (*Type, error) {
	tag := ""
	if len(values) > 0 {
		tag = values[0]
	}
	t, ok := r.Resolve(tag)
	if !ok {
		return nil, &UnknownTypeError{Line: line, Tag: tag, Valid: r.Describe()}
	}
	return t, nil
}

// Dispatch resolves the type of a split line and checks the line's width
// against it.
func (r *Registry) Dispatch(line int, values []string) (*Type, error) {
	t, err := r.ResolveLine(line, values)
	if err != nil {
		return nil, err
	}
	if err := CheckWidth(t, values, line); err != nil {
		return nil, err
	}
	return t, nil
}

// CheckWidth fails when values does not have exactly one value per field of t.
func CheckWidth(t *Type, values []string, line int) error {
	if len(values) != t.Width() {
		return &WidthError{Line: line, Type: t.Name, Want: t.Width(), Got: len(values)}
	}
	return nil
}
