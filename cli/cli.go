// Package cli implements the paymentsfiles command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// mark prefixes a status line written to stderr.
type mark struct {
	symbol string
	style  lipgloss.Style
	tint   bool
}

var (
	markPass = mark{"✓", lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787")), false}
	markFail = mark{"✗", lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")), true}
	markInfo = mark{"→", lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")), false}

	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D7D7"))
)

// status writes one status line. Failures tint the whole message.
func status(w io.Writer, m mark, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if m.tint {
		message = m.style.Render(message)
	}
	_, _ = fmt.Fprintln(w, m.style.Render(m.symbol), message)
}

// confirm asks a yes/no question on the terminal.
var confirm = promptYesNo

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirmed bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirmed)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirmed, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// New creates the parser of the command line into c.
func New(c *CLI, options ...kong.Option) (*kong.Kong, error) {
	defaults := []kong.Option{
		kong.Name("paymentsfiles"),
		kong.Description("Validate and generate remittance and chargeback payments files."),
		kong.UsageOnError(),
		kong.Vars{"version": BuildVersion()},
		kong.Bind(&c.Globals),
	}
	return kong.New(c, append(defaults, options...)...)
}
