// Package telemetry records how long each stage of a command takes.
//
// A Collector travels in the context, so instrumented code needs no extra
// parameters and costs nothing when telemetry is off:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.FromContext(ctx).Start("check remittance")
//	child := timer.Child("validate deposits.csv")
//	child.Detail("1204 records, 3 error lines")
//	child.End()
//	timer.End()
//
//	collector.Report(os.Stderr, output.NewStyles(os.Stderr))
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/paymentsfiles/output"
)

type contextKey struct{}

// Collector gathers timings.
type Collector interface {
	// Start begins timing an operation under the innermost running one.
	Start(name string) Timer

	// Report writes the collected timings. styles may be nil.
	Report(w io.Writer, styles *output.Styles)
}

// Timer times a single operation.
type Timer interface {
	// End stops the timer.
	End()

	// Child starts a timer nested under this one.
	Child(name string) Timer

	// Detail attaches a short note shown next to the timing.
	Detail(text string)
}

// WithCollector returns a context carrying collector.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, contextKey{}, collector)
}

// FromContext returns the context's collector, or one that does nothing.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(contextKey{}).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
