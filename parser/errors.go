package parser

import "fmt"

// FormatError is returned when a line cannot be split as configured.
type FormatError struct {
	Line      int
	Quoted    bool
	Separator rune
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("line %d is not %s", e.Line, separatorName(e.Separator))
	if e.Quoted {
		msg += " or not wrapped in quotation marks"
	}
	return msg
}

func (e *FormatError) GetLine() int {
	return e.Line
}

func separatorName(sep rune) string {
	switch sep {
	case ',':
		return "comma-separated"
	case '|':
		return "pipe-separated"
	case '\t':
		return "tab-separated"
	case ';':
		return "semicolon-separated"
	default:
		return fmt.Sprintf("separated by %q", sep)
	}
}
