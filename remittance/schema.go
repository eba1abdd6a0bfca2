// Package remittance validates and generates remittance files (format
// version 2.1).
//
// A remittance file is a Header (P) followed by one or more deposits and a
// Trailer (T). Each deposit is a DepositHeader (D), one or more
// DepositRecord (R) lines and a DepositTrailer (E):
//
//	"P,20240301,101500,2.1"
//	"D,20240301,Acme,1234,V1,20240302,BT-1,USD,100.00,1,,,"
//	"R,C,S,TX-1,USD,40.00,DIV,,,,"
//	"R,C,S,TX-2,USD,60.00,DIV,,,,"
//	"E,20240301,2"
//	"T,1"
package remittance

import (
	"fmt"

	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/record"
	"github.com/robinvdvleuten/paymentsfiles/structure"
)

// FormatVersion is the only file format version accepted.
const FormatVersion = "2.1"

// Requirements of the foreign exchange fields. Which of them are enforced
// depends on the FX policy.
var (
	FXHeader  = field.Conditional("fx-header")
	FXRecord  = field.Conditional("fx-record")
	FXContext = field.Conditional("fx-context")
)

var (
	yyyyMMdd = field.DateTime("20060102", "yyyyMMdd")
	hhmmss   = field.DateTime("150405", "HHmmss")

	standardMonetary = field.Pattern(`-?\d{0,16}(\.\d{1,2})?`, notStandardMonetary)
	accountNumber    = field.Pattern(`\d{1,32}`, func(string) *field.Error {
		return field.NewError("Deposit Account Number must be numeric and cannot exceed 32 characters in length")
	})
	formatVersion = field.Equals(FormatVersion, func(string) *field.Error {
		return field.NewError("File Format Version was expected to be " + FormatVersion)
	})
)

func notStandardMonetary(name string) *field.Error {
	return field.NewVerboseError(
		fmt.Sprintf("%s not a proper numeric decimal value", name),
		fmt.Sprintf("%s not a proper decimal value (must be numeric with at most 16 digits before the decimal and exactly 2 digits after)", name),
	)
}

// Transaction methods and directions accepted in deposit records.
var (
	TransactionMethods = []string{"C", "D", "COD", "CVS", "P", "CB"}
	Directions         = []string{"D", "W"}
)

// Header fields.
var (
	HeaderRecordType    = field.New("Record Type", field.Always, nil)
	HeaderCreationDate  = field.New("Creation Date", field.Always, yyyyMMdd)
	HeaderCreationTime  = field.New("Creation Time", field.Never, hhmmss)
	HeaderFormatVersion = field.New("File Format Version", field.Always, formatVersion)
)

// DepositHeader fields.
var (
	DepositRecordType            = field.New("Record Type", field.Always, nil)
	DepositDate                  = field.New("Deposit Date", field.Always, yyyyMMdd)
	DepositAccountName           = field.New("Deposit Account Name", field.Always, field.MaxLength(100))
	DepositAccountNumber         = field.New("Deposit Account Number", field.Always, accountNumber)
	DepositVendorID              = field.New("Remittance Vendor ID", field.Always, nil)
	DepositEffectiveDate         = field.New("Effective Deposit Date", field.Always, yyyyMMdd)
	DepositBankTransferID        = field.New("Bank Transfer ID", field.Always, field.MaxLength(100))
	DepositCurrency              = field.New("Deposit Currency", field.Always, field.Currency)
	DepositAmount                = field.New("Deposit Amount", field.Always, standardMonetary)
	DepositRevision              = field.New("Remittance Revision", field.Always, field.Integer)
	DepositFXPresentmentCurrency = field.New("FX Presentment Currency", FXHeader, field.Currency)
	DepositFXPresentmentAmount   = field.New("FX Presentment Amount", FXHeader, standardMonetary)
	DepositFXRate                = field.New("FX Rate", FXContext, field.Decimal)
)

// DepositRecord fields. Transaction Type has no field check: its choices
// depend on the file class and are checked in context.
var (
	RecordRecordType            = field.New("Record Type", field.Always, nil)
	RecordTransactionMethod     = field.New("Transaction Method", field.Always, field.Choice(TransactionMethods...))
	RecordTransactionType       = field.New("Transaction Type", field.Always, nil)
	RecordTransactionID         = field.New("Transaction ID", field.Always, field.MaxLength(100))
	RecordCurrency              = field.New("Transaction Amount Currency", field.Always, field.Currency)
	RecordAmount                = field.New("Transaction Amount", field.Always, standardMonetary)
	RecordProcessingDivisionID  = field.New("Processing Division ID", field.Always, field.MaxLength(30))
	RecordDirection             = field.New("Direction", FXRecord, field.Choice(Directions...))
	RecordFXPresentmentCurrency = field.New("Transaction FX Presentment Currency", FXRecord, field.Currency)
	RecordFXPresentmentAmount   = field.New("Transaction FX Presentment Amount", FXRecord, standardMonetary)
	RecordFXRate                = field.New("Transaction FX Rate", FXContext, field.Decimal)
)

// DepositTrailer fields.
var (
	TrailerDepositRecordType = field.New("Record Type", field.Always, nil)
	TrailerDepositDate       = field.New("Deposit Date", field.Always, yyyyMMdd)
	TrailerNumberOfRecords   = field.New("Number of Records", field.Always, field.Integer)
)

// Trailer fields.
var (
	FileTrailerRecordType       = field.New("Record Type", field.Always, nil)
	FileTrailerNumberOfDeposits = field.New("Number of Remittance Records", field.Always, field.Integer)
)

// Record types, keyed by their tag.
var (
	Header = record.NewType("P", "Header",
		HeaderRecordType, HeaderCreationDate, HeaderCreationTime, HeaderFormatVersion)

	DepositHeader = record.NewType("D", "DepositHeader",
		DepositRecordType, DepositDate, DepositAccountName, DepositAccountNumber, DepositVendorID,
		DepositEffectiveDate, DepositBankTransferID, DepositCurrency, DepositAmount, DepositRevision,
		DepositFXPresentmentCurrency, DepositFXPresentmentAmount, DepositFXRate)

	DepositRecord = record.NewType("R", "DepositRecord",
		RecordRecordType, RecordTransactionMethod, RecordTransactionType, RecordTransactionID,
		RecordCurrency, RecordAmount, RecordProcessingDivisionID, RecordDirection,
		RecordFXPresentmentCurrency, RecordFXPresentmentAmount, RecordFXRate)

	DepositTrailer = record.NewType("E", "DepositTrailer",
		TrailerDepositRecordType, TrailerDepositDate, TrailerNumberOfRecords)

	Trailer = record.NewType("T", "Trailer",
		FileTrailerRecordType, FileTrailerNumberOfDeposits)

	// Types resolves record types by tag.
	Types = record.NewRegistry(Header, DepositHeader, DepositRecord, DepositTrailer, Trailer)
)

// Structure is the legal order of record types.
var Structure = structure.NewTable(map[structure.State][]structure.State{
	structure.Start: {"P"},
	"P":             {"D"},
	"D":             {"R"},
	"R":             {"R", "E"},
	"E":             {"D", "T"},
	"T":             {structure.End},
})

func typeName(tag structure.State) string {
	if t, ok := Types.Resolve(string(tag)); ok {
		return t.Name
	}
	return string(tag)
}
