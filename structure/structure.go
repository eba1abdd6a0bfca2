// Package structure enforces the order of record types across a file.
//
// A Table lists, for each record tag, the tags that may follow it. Two
// virtual states bracket the file: Start precedes the first line and End
// follows the last. The Machine remembers only the last tag it saw.
package structure

import (
	"fmt"
	"sort"
)

// State is a record tag or one of the virtual states Start and End.
type State string

const (
	// Start is the state before the first line.
	Start State = "<start>"
	// End is the state after the last line.
	End State = "<end>"
)

// Table maps a state to the states that may follow it.
type Table struct {
	next map[State]map[State]struct{}
}

// NewTable builds a transition table from an adjacency list.
func NewTable(transitions map[State][]State) *Table {
	t := &Table{next: make(map[State]map[State]struct{}, len(transitions))}
	for from, tos := range transitions {
		set := make(map[State]struct{}, len(tos))
		for _, to := range tos {
			set[to] = struct{}{}
		}
		t.next[from] = set
	}
	return t
}

// Legal reports whether to may directly follow from.
func (t *Table) Legal(from, to State) bool {
	_, ok := t.next[from][to]
	return ok
}

// Initial returns the states that may begin a file.
func (t *Table) Initial() []State {
	return t.following(Start)
}

// Terminal returns the states that may end a file.
func (t *Table) Terminal() []State {
	var states []State
	for from, set := range t.next {
		if _, ok := set[End]; ok {
			states = append(states, from)
		}
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

func (t *Table) following(from State) []State {
	states := make([]State, 0, len(t.next[from]))
	for s := range t.next[from] {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// Namer returns the display name of a tag.
type Namer func(tag State) string

// Machine walks a Table one line at a time.
type Machine struct {
	table *Table
	name  Namer
	last  State
	line  int
}

// NewMachine starts a machine at Start. A nil namer displays tags as-is.
func NewMachine(table *Table, name Namer) *Machine {
	if name == nil {
		name = func(tag State) string { return string(tag) }
	}
	return &Machine{table: table, name: name, last: Start}
}

// Last returns the state of the most recent successful step.
func (m *Machine) Last() State {
	return m.last
}

// Step moves the machine to tag, the record type found at line.
func (m *Machine) Step(line int, tag string) error {
	next := State(tag)
	if !m.table.Legal(m.last, next) {
		return m.errorFor(line, next)
	}
	m.last = next
	m.line = line
	return nil
}

// Finish checks that the last state seen may end the file.
func (m *Machine) Finish() error {
	if m.table.Legal(m.last, End) {
		return nil
	}
	return m.errorFor(m.line, End)
}

func (m *Machine) errorFor(line int, next State) error {
	switch {
	case next == End:
		return &Error{Kind: KindEnd, Line: line, From: m.last, expected: m.describe(m.table.Terminal())}
	case m.last == Start:
		return &Error{Kind: KindStart, Line: line, To: next, expected: m.describe(m.table.Initial())}
	default:
		return &Error{Kind: KindTransition, Line: line, From: m.last, To: next, fromName: m.name(m.last), toName: m.name(next)}
	}
}

// describe renders states as `Header, "P",` for use in messages.
func (m *Machine) describe(states []State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		if s == End || s == Start {
			continue
		}
		out = append(out, fmt.Sprintf("%s, %q,", m.name(s), string(s)))
	}
	return out
}
