package sched

import (
	"fmt"
	"strings"
)

// WriteDOT renders the dependence graph, plus each node's assigned
// cycle (if scheduled), in Graphviz DOT form — the diagnostic dump
// spec §6 ties to the print_dot_graphs option. Arc labels carry the
// operand and dependence kind so a reader can tell why two gates are
// ordered.
func WriteDOT(g *Graph) string {
	var b strings.Builder
	b.WriteString("digraph dependence_graph {\n")
	b.WriteString("  rankdir=TB;\n")

	for _, n := range g.Nodes {
		label := g.Name(n.ID)
		if n.ID != g.Source && n.ID != g.Sink {
			label = fmt.Sprintf("%s\\ncycle=%d", label, n.Gate.Cycle())
		}
		shape := "box"
		if n.ID == g.Source || n.ID == g.Sink {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  n%d [label=\"%s\", shape=%s];\n", n.ID, label, shape)
	}

	for _, a := range g.Arcs {
		fmt.Fprintf(&b, "  n%d -> n%d [label=\"q%d %s w=%d\"];\n",
			a.Source, a.Target, a.Operand, a.Kind, a.Weight)
	}

	b.WriteString("}\n")
	return b.String()
}
