package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/paymentsfiles/remittance"
	"github.com/robinvdvleuten/paymentsfiles/sample"
)

// GenerateCmd writes sample files.
type GenerateCmd struct {
	Remittance GenerateRemittanceCmd `cmd:"" help:"Generate a remittance file."`
	Chargeback GenerateChargebackCmd `cmd:"" help:"Generate a chargeback file."`
}

// OutputFlags are shared by both families.
type OutputFlags struct {
	Output string `short:"o" help:"File to write (use '-' for stdout)." default:"-"`
	Seed   uint64 `help:"Seed of the generated content; equal seeds produce equal files." default:"1"`
	Force  bool   `short:"f" help:"Overwrite an existing file without asking."`
}

// create opens the output, asking before an existing file is replaced.
func (f *OutputFlags) create(ctx *kong.Context) (io.Writer, func() error, error) {
	if f.Output == "-" {
		return ctx.Stdout, func() error { return nil }, nil
	}
	if _, err := os.Stat(f.Output); err == nil && !f.Force {
		ok, err := confirm(fmt.Sprintf("%s already exists. Overwrite?", f.Output))
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			err := notOverwritten(f.Output)
			status(ctx.Stderr, markFail, "%s", err)
			return nil, nil, err
		}
	}
	file, err := os.Create(f.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", f.Output, err)
	}
	return file, file.Close, nil
}

func (f *OutputFlags) generate(ctx *kong.Context, write func(io.Writer) error) error {
	w, closeOutput, err := f.create(ctx)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		_ = closeOutput()
		return err
	}
	if err := closeOutput(); err != nil {
		return err
	}
	if f.Output != "-" {
		status(ctx.Stderr, markPass, "Wrote %s", pathStyle.Render(f.Output))
	}
	return nil
}

// GenerateRemittanceCmd writes a sample remittance file.
type GenerateRemittanceCmd struct {
	OutputFlags

	Deposits  int    `help:"Number of deposits." default:"2"`
	Records   int    `help:"Number of records per deposit." default:"3"`
	FX        string `help:"Foreign exchange policy: none, standard or records."`
	FileClass string `help:"File class: standard or dlocal."`
	NoQuotes  bool   `help:"Do not wrap lines in quotation marks."`
}

func (cmd *GenerateRemittanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	overrides := map[string]any{}
	if cmd.FX != "" {
		overrides["remittance.fx"] = cmd.FX
	}
	if cmd.FileClass != "" {
		overrides["remittance.file_class"] = cmd.FileClass
	}
	if cmd.NoQuotes {
		overrides["remittance.quotes"] = false
	}
	cfg, _, err := globals.load(ctx, overrides)
	if err != nil {
		return err
	}

	class, _ := remittance.ParseFileClass(cfg.Remittance.FileClass)
	fx, _ := remittance.ParseFXPolicy(cfg.Remittance.FX)
	return cmd.generate(ctx, func(w io.Writer) error {
		return sample.Remittance(w, sample.RemittanceOptions{
			Seed:     cmd.Seed,
			Deposits: cmd.Deposits,
			Records:  cmd.Records,
			Quotes:   cfg.Remittance.Quotes,
			Class:    class,
			FX:       fx,
		})
	})
}

// GenerateChargebackCmd writes a sample chargeback file.
type GenerateChargebackCmd struct {
	OutputFlags

	Entries int `help:"Number of entries." default:"10"`
}

func (cmd *GenerateChargebackCmd) Run(ctx *kong.Context, globals *Globals) error {
	if _, _, err := globals.load(ctx, map[string]any{}); err != nil {
		return err
	}
	return cmd.generate(ctx, func(w io.Writer) error {
		return sample.Chargeback(w, sample.ChargebackOptions{Seed: cmd.Seed, Entries: cmd.Entries})
	})
}
