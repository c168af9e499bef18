package automaton

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes a Graphviz representation of the automaton to w.
// Parallel labels between the same pair of states share one edge.
func (a *Automaton) WriteDOT(w io.Writer) error {
	var b strings.Builder

	b.WriteString("digraph NFA {\n")
	b.WriteString("    rankdir=LR;\n")
	for _, s := range a.States() {
		shape := "circle"
		if a.IsFinal(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    q%d [shape=%s];\n", s, shape)
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> q%d;\n", a.start)

	for _, from := range a.sortedSources() {
		for _, to := range a.sortedTargets(from) {
			labels := a.Labels(from, to)
			parts := make([]string, len(labels))
			for i, l := range labels {
				parts[i] = string(l)
			}
			fmt.Fprintf(&b, "    q%d -> q%d [label=%q];\n", from, to, strings.Join(parts, ","))
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
