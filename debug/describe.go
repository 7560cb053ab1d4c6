// Package debug renders stream graphs and taps event flow for inspection.
package debug

import (
	"fmt"
	"strings"

	"github.com/bassclefstudio/streams/nodes"
)

// Describe renders the ancestry of a node as an indented tree, one line per
// node and children pointing at their parents. A node reached again along
// the current walk is marked as a cycle and not descended into, so
// self-referential graphs render finitely.
func Describe(n nodes.Node) string {
	var sb strings.Builder
	describe(&sb, n, "", "", make(map[nodes.Node]bool))
	return sb.String()
}

func describe(sb *strings.Builder, n nodes.Node, lead string, childLead string, walking map[nodes.Node]bool) {
	sb.WriteString(lead)
	sb.WriteString(label(n))
	if walking[n] {
		sb.WriteString(" (cycle)\n")
		return
	}
	sb.WriteString("\n")

	walking[n] = true
	parents := n.Parents()
	for i, parent := range parents {
		connector, indent := "├─> ", "│   "
		if i == len(parents)-1 {
			connector, indent = "└─> ", "    "
		}
		describe(sb, parent, childLead+connector, childLead+indent, walking)
	}
	delete(walking, n)
}

func label(n nodes.Node) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", n), "*")
	if n.Started() {
		return name + " (started)"
	}
	return name
}
