package remittance

import (
	"fmt"
	"strings"

	"github.com/robinvdvleuten/paymentsfiles/field"
)

// FileClass selects source-specific validation rules.
type FileClass string

const (
	ClassStandard FileClass = "standard"
	ClassDLocal   FileClass = "dlocal"
)

// ParseFileClass parses a file class, ignoring case.
func ParseFileClass(s string) (FileClass, error) {
	switch strings.ToLower(s) {
	case "", string(ClassStandard):
		return ClassStandard, nil
	case string(ClassDLocal):
		return ClassDLocal, nil
	}
	return "", fmt.Errorf("unknown file class %q (valid: standard, dlocal)", s)
}

// FXPolicy decides where foreign exchange fields are expected.
type FXPolicy string

const (
	// FXNone expects no foreign exchange fields.
	FXNone FXPolicy = "none"
	// FXStandard expects them in deposit headers and records; the rate may
	// be given by either.
	FXStandard FXPolicy = "standard"
	// FXRecords expects them, rate included, in every record.
	FXRecords FXPolicy = "records"
)

// ParseFXPolicy parses an FX policy. "onlyRecords" is accepted as an alias
// of "records".
func ParseFXPolicy(s string) (FXPolicy, error) {
	switch strings.ToLower(s) {
	case "", string(FXNone):
		return FXNone, nil
	case string(FXStandard):
		return FXStandard, nil
	case string(FXRecords), "onlyrecords":
		return FXRecords, nil
	}
	return "", fmt.Errorf("unknown fx policy %q (valid: none, standard, records)", s)
}

// Mandatory returns the conditional requirements enforced under p.
func (p FXPolicy) Mandatory() []field.Requirement {
	switch p {
	case FXStandard:
		return []field.Requirement{FXHeader, FXRecord}
	case FXRecords:
		return []field.Requirement{FXRecord}
	default:
		return nil
	}
}

// transactionTypes lists every transaction type with the class that allows
// it; an empty class means every class does.
var transactionTypes = []struct {
	code  string
	class FileClass
}{
	{"S", ""},   // sale
	{"R", ""},   // refund
	{"C", ""},   // chargeback
	{"FIA", ""}, // interchange assessment fee
	{"F", ""},   // processor fee
	{"FBU", ""}, // business unit fee
	{"REJ", ""},
	{"ADJ", ""},
	{"REV", ""},
	{"T", ""}, // currency exchange trade
	{"RET", ""},
	{"REP", ""},
	{"CAN", ""},
	{"P", ""}, // profit payment
	{"FWT", ""},
	{"TAX", ""},
	{"FXF", ClassDLocal},
	{"FX_HEDGING", ClassDLocal},
}

// TransactionTypes returns the transaction types allowed for class.
func TransactionTypes(class FileClass) []string {
	var codes []string
	for _, tt := range transactionTypes {
		if tt.class == "" || tt.class == class {
			codes = append(codes, tt.code)
		}
	}
	return codes
}
