package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/robinvdvleuten/paymentsfiles/output"
)

// slowThreshold marks operations highlighted in reports.
const slowThreshold = 100 * time.Millisecond

// writeTree renders root and its children:
//
//	check remittance: 125ms
//	├─ validate a.csv: 85ms (1204 records, 0 error lines)
//	└─ validate b.csv: 40ms (fatal at line 12)
func writeTree(w io.Writer, root *node, styles *output.Styles) {
	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s%s\n", name, formatDuration(root.duration()), suffix(root))

	for i, child := range root.children {
		writeNode(w, child, "", i == len(root.children)-1, styles)
	}
}

func writeNode(w io.Writer, n *node, prefix string, last bool, styles *output.Styles) {
	branch, extension := "├─ ", "│  "
	if last {
		branch, extension = "└─ ", "   "
	}

	tree := prefix + branch
	timing := formatDuration(n.duration())
	if styles != nil {
		tree = styles.Dim(tree)
		if n.duration() >= slowThreshold {
			timing = styles.Warning(timing)
		} else {
			timing = styles.Dim(timing)
		}
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s%s\n", tree, n.name, timing, suffix(n))

	for i, child := range n.children {
		writeNode(w, child, prefix+extension, i == len(n.children)-1, styles)
	}
}

func suffix(n *node) string {
	if n.detail == "" {
		return ""
	}
	return " (" + n.detail + ")"
}

// formatDuration shows milliseconds below one second and seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
