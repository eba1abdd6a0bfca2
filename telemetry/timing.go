package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/paymentsfiles/output"
)

// TimingCollector builds a tree of timed operations.
type TimingCollector struct {
	mu      sync.Mutex
	roots   []*node
	current *node
	now     func() time.Time
}

type node struct {
	name     string
	detail   string
	start    time.Time
	end      time.Time
	parent   *node
	children []*node
}

func (n *node) duration() time.Duration {
	if n.end.IsZero() {
		return 0
	}
	return n.end.Sub(n.start)
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{now: time.Now}
}

// Start begins an operation nested under the innermost running one, or a
// new root when none is running.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := &node{name: name, start: c.now(), parent: c.current}
	if c.current == nil {
		c.roots = append(c.roots, n)
	} else {
		c.current.children = append(c.current.children, n)
	}
	c.current = n
	return &timer{collector: c, node: n}
}

// Report writes every root operation as a tree.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, root := range c.roots {
		writeTree(w, root, styles)
	}
}

type timer struct {
	collector *TimingCollector
	node      *node
}

func (t *timer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	if !t.node.end.IsZero() {
		return
	}
	t.node.end = t.collector.now()
	if t.collector.current == t.node {
		t.collector.current = t.node.parent
	}
}

// Child attaches directly to this timer's node, regardless of which
// operation is currently innermost.
func (t *timer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	n := &node{name: name, start: t.collector.now(), parent: t.node}
	t.node.children = append(t.node.children, n)
	return &timer{collector: t.collector, node: n}
}

func (t *timer) Detail(text string) {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.detail = text
}
