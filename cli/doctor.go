package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/robinvdvleuten/paymentsfiles/loader"
	"github.com/robinvdvleuten/paymentsfiles/parser"
)

// DoctorCmd provides doctor utilities for debugging payments files.
type DoctorCmd struct {
	Fields FieldsCmd `cmd:"" help:"Show how the lines of a file split into fields."`
}

// FieldsCmd shows the fields of every line of a file.
type FieldsCmd struct {
	File   string `help:"Input filename (use '-' for stdin)." arg:"" default:"-"`
	Quotes bool   `help:"Lines are wrapped in quotation marks."`
}

// Run executes the fields command.
func (cmd *FieldsCmd) Run(ctx *kong.Context) error {
	src, err := loader.New().Open(context.Background(), cmd.File)
	if err != nil {
		return err
	}
	defer src.Close()

	t := table.NewWriter()
	t.SetOutputMirror(ctx.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Line", "Width", "Fields"})

	for line, err := range parser.Lines(src, parser.NewOptions(parser.WithQuotes(cmd.Quotes))) {
		if err != nil {
			t.Render()
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		t.AppendRow(table.Row{line.No, len(line.Fields), strings.Join(line.Fields, " | ")})
	}
	t.Render()
	return nil
}
