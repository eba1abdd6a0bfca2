package structure

import (
	"fmt"
	"strings"
)

// Kind distinguishes the three ways a file can be out of order.
type Kind int

const (
	// KindStart means the first line has a tag that cannot begin a file.
	KindStart Kind = iota
	// KindEnd means the file stops at a tag that cannot end it.
	KindEnd
	// KindTransition means a tag cannot follow the previous one.
	KindTransition
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	default:
		return "transition"
	}
}

// Error reports an illegal position of a record type.
type Error struct {
	Kind Kind
	Line int
	From State
	To   State

	expected []string
	fromName string
	toName   string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStart:
		return fmt.Sprintf("the file must begin with a %s entry", strings.Join(e.expected, " or a "))
	case KindEnd:
		return fmt.Sprintf("the file must end with a %s entry", strings.Join(e.expected, " or a "))
	default:
		return fmt.Sprintf("the %q entry at line %d cannot follow a %q entry", e.toName, e.Line, e.fromName)
	}
}

// GetLine returns the line the error was found at. An error raised at the
// end of the file carries the last line read, or 0 for an empty file.
func (e *Error) GetLine() int {
	return e.Line
}
