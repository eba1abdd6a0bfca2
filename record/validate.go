package record

import (
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/paymentsfiles/field"
)

// Validate applies every field's requirement and check to r, in column
// order. Fields whose requirement is in mandatory are treated as Always.
//
// A required empty field yields exactly one empty-field error and is not
// checked further. An optional empty field is skipped.
func (r *Record) Validate(mandatory ...field.Requirement) []*field.Error {
	var errs []*field.Error
	for i, f := range r.typ.Fields {
		value := r.values[i]
		required := f.Required == field.Always || slices.Contains(mandatory, f.Required)

		if value == "" {
			if required {
				errs = append(errs, field.EmptyError(f.Name))
			}
			continue
		}

		if err := f.Validate(value); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
