// Large Payments File Generator
//
// This tool generates a large remittance or chargeback file for performance
// testing and profiling of the streaming validators.
//
// Usage:
//
//	go run main.go > large.csv
//	go run main.go 20000000 > large.csv             # Specify target size in bytes
//	go run main.go 20000000 chargeback > large.csv  # Generate a chargeback file
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/robinvdvleuten/paymentsfiles/sample"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB

	// Approximate line lengths, used to size the file.
	remittanceRecordSize = 48
	chargebackEntrySize  = 120

	recordsPerDeposit = 500
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}
	family := "remittance"
	if len(os.Args) > 2 {
		family = os.Args[2]
	}

	w := bufio.NewWriterSize(os.Stdout, 64*1024)

	var err error
	switch family {
	case "remittance":
		deposits := max(1, targetSize/(remittanceRecordSize*recordsPerDeposit))
		err = sample.Remittance(w, sample.RemittanceOptions{
			Seed:     1,
			Deposits: deposits,
			Records:  recordsPerDeposit,
			Quotes:   true,
		})
	case "chargeback":
		err = sample.Chargeback(w, sample.ChargebackOptions{
			Seed:    1,
			Entries: max(1, targetSize/chargebackEntrySize),
		})
	default:
		err = fmt.Errorf("unknown file family %q (valid: remittance, chargeback)", family)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Generated %s file of about %d bytes\n", family, targetSize)
}
