package remittance

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"time"

	"github.com/robinvdvleuten/paymentsfiles/loader"
	"github.com/robinvdvleuten/paymentsfiles/parser"
	"github.com/robinvdvleuten/paymentsfiles/validator"
)

// settings are shared by Validator and Writer, so a file written with a
// set of options validates with the same options.
type settings struct {
	quotes  bool
	class   FileClass
	fx      FXPolicy
	created time.Time
	loader  *loader.Loader
	logger  *slog.Logger
}

func newSettings(opts []Option) settings {
	s := settings{quotes: true, class: ClassStandard, fx: FXNone}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures a Validator or a Writer.
type Option func(*settings)

// WithQuotes sets whether lines are wrapped in quotation marks. They are by
// default.
func WithQuotes(quoted bool) Option {
	return func(s *settings) {
		s.quotes = quoted
	}
}

// WithFileClass selects class-specific rules.
func WithFileClass(class FileClass) Option {
	return func(s *settings) {
		s.class = class
	}
}

// WithFX sets the foreign exchange policy.
func WithFX(fx FXPolicy) Option {
	return func(s *settings) {
		s.fx = fx
	}
}

// WithCreationTime sets the creation time a Writer puts in the header.
// It defaults to the time the header is written.
func WithCreationTime(t time.Time) Option {
	return func(s *settings) {
		s.created = t
	}
}

// WithLoader sets the loader a Validator opens files with.
func WithLoader(l *loader.Loader) Option {
	return func(s *settings) {
		s.loader = l
	}
}

// WithLogger sets the logger of a Validator.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// Validator validates remittance files.
type Validator struct {
	settings
}

var _ validator.FileValidator = (*Validator)(nil)

// NewValidator creates a Validator. Without options it expects quoted,
// standard-class files and runs no foreign exchange checks.
func NewValidator(opts ...Option) *Validator {
	return &Validator{settings: newSettings(opts)}
}

func (v *Validator) pipeline() *validator.Pipeline[Stats] {
	return &validator.Pipeline[Stats]{
		Family:    "remittance",
		Split:     parser.NewOptions(parser.WithQuotes(v.quotes)),
		Resolve:   Types.ResolveLine,
		Structure: Structure,
		Namer:     typeName,
		Mandatory: v.fx.Mandatory(),
		Initial:   NewStats(v.class, v.fx),
		Context:   Context,
		Advance:   Stats.Next,
		Loader:    v.loader,
		Logger:    v.logger,
	}
}

// Validate streams the named file through every remittance check.
func (v *Validator) Validate(ctx context.Context, name string) iter.Seq2[validator.ErrorLine, error] {
	return v.pipeline().Validate(ctx, name)
}

// Run validates the lines read from r.
func (v *Validator) Run(ctx context.Context, r io.Reader) iter.Seq2[validator.ErrorLine, error] {
	return v.pipeline().Run(ctx, r)
}
