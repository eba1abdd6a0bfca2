package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/robinvdvleuten/paymentsfiles/field"
	"github.com/robinvdvleuten/paymentsfiles/loader"
	"github.com/robinvdvleuten/paymentsfiles/parser"
	"github.com/robinvdvleuten/paymentsfiles/record"
	"github.com/robinvdvleuten/paymentsfiles/structure"
	"github.com/robinvdvleuten/paymentsfiles/telemetry"
)

// Pipeline describes how one file family is validated. S is the family's
// running context state; it is passed by value and replaced after every
// record.
type Pipeline[S any] struct {
	// Family names the file family in logs.
	Family string

	// Split configures line splitting.
	Split parser.Options

	// Header, when set, receives the first line instead of the record
	// checks. An error aborts validation.
	Header func(line parser.Line) error

	// Resolve returns the record type of a split line.
	Resolve func(line int, values []string) (*record.Type, error)

	// Structure, when set, orders record types by tag.
	Structure *structure.Table
	// Namer names tags in structural errors.
	Namer structure.Namer

	// Mandatory makes conditionally required fields required.
	Mandatory []field.Requirement

	// Initial is the context state before the first record.
	Initial S
	// Context checks a record against the state accumulated before it.
	Context func(r *record.Record, state S) []*field.Error
	// Advance folds a record into the state.
	Advance func(state S, r *record.Record) S

	// Finish, when set, runs after the last line with the number of
	// records read. An error is fatal.
	Finish func(records int) error

	Loader *loader.Loader
	Logger *slog.Logger
}

// Stats summarizes a completed or aborted run.
type Stats struct {
	Records    int
	ErrorLines int
}

func (p *Pipeline[S]) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

func (p *Pipeline[S]) loader() *loader.Loader {
	if p.Loader == nil {
		return loader.New()
	}
	return p.Loader
}

// Validate opens name and validates it. Every error other than
// cancellation is wrapped in a FatalError naming the file.
func (p *Pipeline[S]) Validate(ctx context.Context, name string) iter.Seq2[ErrorLine, error] {
	return func(yield func(ErrorLine, error) bool) {
		src, err := p.loader().Open(ctx, name)
		if err != nil {
			yield(ErrorLine{}, &FatalError{Source: name, Err: err})
			return
		}
		defer src.Close()

		timer := telemetry.FromContext(ctx).Start("validate " + src.Name)
		defer timer.End()

		var stats Stats
		defer func() {
			timer.Detail(fmt.Sprintf("%d records, %d error lines", stats.Records, stats.ErrorLines))
		}()

		for line, err := range p.run(ctx, src, &stats) {
			if err != nil {
				if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
					err = &FatalError{Source: src.Name, Err: err}
				}
				yield(ErrorLine{}, err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// Run validates the lines read from r.
func (p *Pipeline[S]) Run(ctx context.Context, r io.Reader) iter.Seq2[ErrorLine, error] {
	return p.run(ctx, r, &Stats{})
}

func (p *Pipeline[S]) run(ctx context.Context, r io.Reader, stats *Stats) iter.Seq2[ErrorLine, error] {
	return func(yield func(ErrorLine, error) bool) {
		log := p.logger().With("family", p.Family)
		log.Debug("validation started")

		var machine *structure.Machine
		if p.Structure != nil {
			machine = structure.NewMachine(p.Structure, p.Namer)
		}

		fail := func(err error) {
			log.Debug("validation aborted", "error", err, "records", stats.Records)
			yield(ErrorLine{}, err)
		}

		state := p.Initial
		first := true

		for line, err := range parser.Lines(r, p.Split) {
			if err != nil {
				fail(err)
				return
			}
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}

			if first && p.Header != nil {
				first = false
				if err := p.Header(line); err != nil {
					fail(err)
					return
				}
				continue
			}
			first = false

			typ, err := p.Resolve(line.No, line.Fields)
			if err != nil {
				fail(err)
				return
			}
			if machine != nil {
				if err := machine.Step(line.No, typ.Tag); err != nil {
					fail(err)
					return
				}
			}
			if err := record.CheckWidth(typ, line.Fields, line.No); err != nil {
				fail(err)
				return
			}

			rec, err := record.New(typ, line.Fields, line.No)
			if err != nil {
				fail(err)
				return
			}
			stats.Records++

			errs := rec.Validate(p.Mandatory...)
			if p.Context != nil {
				errs = append(errs, p.Context(rec, state)...)
			}
			if p.Advance != nil {
				state = p.Advance(state, rec)
			}

			if len(errs) > 0 {
				stats.ErrorLines++
				if !yield(ErrorLine{Line: line.No, Errors: errs}, nil) {
					log.Debug("validation stopped by caller", "line", line.No)
					return
				}
			}
		}

		if machine != nil {
			if err := machine.Finish(); err != nil {
				fail(err)
				return
			}
		}
		if p.Finish != nil {
			if err := p.Finish(stats.Records); err != nil {
				fail(err)
				return
			}
		}

		log.Debug("validation finished", "records", stats.Records, "error_lines", stats.ErrorLines)
	}
}
