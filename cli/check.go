package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/paymentsfiles/chargeback"
	"github.com/robinvdvleuten/paymentsfiles/config"
	"github.com/robinvdvleuten/paymentsfiles/output"
	"github.com/robinvdvleuten/paymentsfiles/remittance"
	"github.com/robinvdvleuten/paymentsfiles/report"
	"github.com/robinvdvleuten/paymentsfiles/telemetry"
	"github.com/robinvdvleuten/paymentsfiles/validator"
)

// interrupted returns a context that is done when the user interrupts.
var interrupted = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// CheckCmd validates files of one family.
type CheckCmd struct {
	Remittance CheckRemittanceCmd `cmd:"" help:"Validate remittance files."`
	Chargeback CheckChargebackCmd `cmd:"" help:"Validate chargeback files."`
}

// CheckFlags are shared by both families.
type CheckFlags struct {
	Files   []string `help:"Files to validate (use '-' for stdin)." arg:"" default:"-"`
	Verbose bool     `short:"v" help:"Provide more context with error messages."`
	Format  string   `help:"Report format: text or json."`
	Watch   bool     `help:"Validate again whenever a file changes, until interrupted."`
}

func (f *CheckFlags) overrides() map[string]any {
	overrides := map[string]any{}
	if f.Verbose {
		overrides["report.verbose"] = true
	}
	if f.Format != "" {
		overrides["report.format"] = f.Format
	}
	return overrides
}

// CheckRemittanceCmd validates remittance files.
type CheckRemittanceCmd struct {
	CheckFlags

	FX        string `help:"Foreign exchange policy: none, standard or records."`
	FileClass string `help:"File class: standard or dlocal."`
	NoQuotes  bool   `help:"Lines are not wrapped in quotation marks."`
}

func (cmd *CheckRemittanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	overrides := cmd.overrides()
	if cmd.FX != "" {
		overrides["remittance.fx"] = cmd.FX
	}
	if cmd.FileClass != "" {
		overrides["remittance.file_class"] = cmd.FileClass
	}
	if cmd.NoQuotes {
		overrides["remittance.quotes"] = false
	}

	cfg, logger, err := globals.load(ctx, overrides)
	if err != nil {
		return err
	}
	opts := append(cfg.RemittanceOptions(), remittance.WithLogger(logger))
	return cmd.check(ctx, globals, cfg, logger, "remittance", remittance.NewValidator(opts...))
}

// CheckChargebackCmd validates chargeback files.
type CheckChargebackCmd struct {
	CheckFlags
}

func (cmd *CheckChargebackCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, logger, err := globals.load(ctx, cmd.overrides())
	if err != nil {
		return err
	}
	return cmd.check(ctx, globals, cfg, logger, "chargeback", chargeback.NewValidator(chargeback.WithLogger(logger)))
}

func newDirector(w io.Writer, cfg *config.Config) report.Director {
	if cfg.Report.Format == config.FormatJSON {
		return report.NewJSONDirector(w, cfg.Report.Verbose)
	}
	return report.NewTextDirector(w, report.WithVerbose(cfg.Report.Verbose))
}

func (f *CheckFlags) check(ctx *kong.Context, globals *Globals, cfg *config.Config, logger *slog.Logger, family string, v validator.FileValidator) error {
	runCtx, stop := interrupted()
	defer stop()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		timer := collector.Start("check " + family)
		defer func() {
			timer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	controller := report.NewController(v, newDirector(ctx.Stdout, cfg))
	results := make([]report.Result, 0, len(f.Files))
	for _, name := range f.Files {
		results = append(results, controller.Validate(runCtx, name))
	}
	if len(results) > 1 && cfg.Report.Format == config.FormatText {
		report.Summary(ctx.Stdout, results)
	}

	if f.Watch {
		status(ctx.Stderr, markInfo, "Watching %d file(s) for changes, press Ctrl+C to stop", len(f.Files))
		err := watch(runCtx, f.Files, logger, func(name string) {
			for i, file := range f.Files {
				if file == name {
					results[i] = controller.Validate(runCtx, name)
				}
			}
		})
		if err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
		}
	}
	if failed > 0 {
		err := failedFiles(failed, len(results))
		status(ctx.Stderr, markFail, "%s", err)
		return err
	}
	status(ctx.Stderr, markPass, "Check passed")
	return nil
}
