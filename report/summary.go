package report

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary renders a table of results, one row per file.
func Summary(w io.Writer, results []Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"File", "Status", "Error lines", "Errors", "Fatal"})

	failed := 0
	for _, r := range results {
		status := "pass"
		if !r.Passed() {
			status = "fail"
			failed++
		}
		fatal := ""
		if r.Fatal != nil {
			fatal = message(r.Fatal)
		}
		t.AppendRow(table.Row{r.Name, status, r.ErrorLines, r.Errors, fatal})
	}
	t.AppendFooter(table.Row{strconv.Itoa(len(results)) + " files", strconv.Itoa(failed) + " failed"})
	t.Render()
}
