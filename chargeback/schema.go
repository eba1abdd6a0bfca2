// Package chargeback validates and generates chargeback files.
//
// A chargeback file is a line of column names followed by one line per
// disputed transaction, all of the same nine columns:
//
//	Dispute Status,Case Number,Transaction ID,Dispute Time,Currency,Disputed Amount,Reason,Representment Deadline,Reason Description
//	Won,CBK-1,TX-1,2020-04-15T20:05:30Z,JPY,3400,Unrecognized,2018-05-21,Customer doesn't recognize charge
package chargeback

import (
	"fmt"
	"strings"
	"time"

	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/record"
)

// DisputeStatus is the state of a dispute.
type DisputeStatus string

const (
	Won           DisputeStatus = "Won"
	Lost          DisputeStatus = "Lost"
	NeedsResponse DisputeStatus = "NeedsResponse"
)

// DisputeStatuses lists every accepted dispute status.
var DisputeStatuses = []DisputeStatus{Won, Lost, NeedsResponse}

// Reason is why a transaction was disputed.
type Reason string

const (
	Duplicate            Reason = "Duplicate"
	Fraudulent           Reason = "Fraudulent"
	SubscriptionCanceled Reason = "SubscriptionCanceled"
	ProductUnacceptable  Reason = "ProductUnacceptable"
	ProductNotReceived   Reason = "ProductNotReceived"
	Unrecognized         Reason = "Unrecognized"
	CreditNotProcessed   Reason = "CreditNotProcessed"
	General              Reason = "General"
	Overcharged          Reason = "Overcharged"
	ProcessingError      Reason = "ProcessingError"
	PaidByOtherMeans     Reason = "PaidbyOtherMeans"
	OrderCanceled        Reason = "OrderCanceled"
)

// Reasons lists every accepted reason.
var Reasons = []Reason{
	Duplicate, Fraudulent, SubscriptionCanceled, ProductUnacceptable, ProductNotReceived, Unrecognized,
	CreditNotProcessed, General, Overcharged, ProcessingError, PaidByOtherMeans, OrderCanceled,
}

func choices[T ~string](values []T) field.Check {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return field.Choice(names...)
}

// isoInstant accepts UTC instants such as 2020-04-15T20:05:30Z.
func isoInstant(name, value string) *field.Error {
	if strings.HasSuffix(value, "Z") {
		if _, err := time.Parse(time.RFC3339, value); err == nil {
			return nil
		}
	}
	return field.NewVerboseError(
		fmt.Sprintf("%s not proper RFC3339 date-time instant", name),
		fmt.Sprintf("%s not proper RFC3339 date-time instant (must be in UTC timezone with form <YYYY-MM-DD>T<HH:MM:SS>Z)", name),
	)
}

// Chargeback fields, in column order.
var (
	DisputeStatusField    = field.New("Dispute Status", field.Always, choices(DisputeStatuses))
	CaseNumber            = field.New("Case Number", field.Always, field.MaxLength(30))
	TransactionID         = field.New("Transaction ID", field.Always, field.MaxLength(38))
	DisputeTime           = field.New("Dispute Time", field.Always, isoInstant)
	Currency              = field.New("Currency", field.Always, field.Currency)
	DisputedAmount        = field.New("Disputed Amount", field.Always, field.Decimal)
	ReasonField           = field.New("Reason", field.Always, choices(Reasons))
	RepresentmentDeadline = field.New("Representment Deadline", field.Always, field.DateTime(time.DateOnly, "yyyy-MM-dd"))
	ReasonDescription     = field.New("Reason Description", field.Never, field.All(field.MaxLength(50), field.ASCII))
)

// Schema is the only record type of a chargeback file. Lines carry no tag.
var Schema = record.NewType("", "Chargeback",
	DisputeStatusField,
	CaseNumber,
	TransactionID,
	DisputeTime,
	Currency,
	DisputedAmount,
	ReasonField,
	RepresentmentDeadline,
	ReasonDescription,
)

// resolve returns Schema for every line.
func resolve(int, []string) (*record.Type, error) {
	return Schema, nil
}
