package chargeback

import (
	"context"
	"io"
	"iter"
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/paymentsfiles/loader"
	"github.com/robinvdvleuten/paymentsfiles/parser"
	"github.com/robinvdvleuten/paymentsfiles/validator"
)

type settings struct {
	loader *loader.Loader
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*settings)

// WithLoader sets the loader files are opened with.
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

// Validator validates chargeback files.
type Validator struct {
	settings
}

var _ validator.FileValidator = (*Validator)(nil)

// NewValidator creates a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(&v.settings)
	}
	return v
}

func (v *Validator) pipeline() *validator.Pipeline[struct{}] {
	return &validator.Pipeline[struct{}]{
		Family:  "chargeback",
		Split:   parser.NewOptions(),
		Header:  checkHeader,
		Resolve: resolve,
		Context: Context,
		Finish:  checkNonEmpty,
		Loader:  v.loader,
		Logger:  v.logger,
	}
}

func checkHeader(line parser.Line) error {
	if !slices.Equal(line.Fields, Schema.Names()) {
		return &HeaderError{Got: line.Fields}
	}
	return nil
}

func checkNonEmpty(records int) error {
	if records == 0 {
		return &EmptyError{}
	}
	return nil
}

// Validate streams the named file through every chargeback check.
func (v *Validator) Validate(ctx context.Context, name string) iter.Seq2[validator.ErrorLine, error] {
	return v.pipeline().Validate(ctx, name)
}

// Run validates the lines read from r.
func (v *Validator) Run(ctx context.Context, r io.Reader) iter.Seq2[validator.ErrorLine, error] {
	return v.pipeline().Run(ctx, r)
}
