package graph

import (
	"bytes"
	"fmt"
	"io"
)

// DOTOptions configures DOT output.
type DOTOptions struct {
	// RankDir sets the layout direction, "TB" (default) or "LR".
	RankDir string
}

// ToDOT converts a Graph to Graphviz DOT format for node-link visualization.
// Node labels stack the display name over the type label; the root node is
// drawn with a bold outline. Field edges are labeled with the field name,
// supertype edges are dashed and unlabeled. The output is structural only -
// positions and rendering are left to Graphviz.
func ToDOT(g *Graph, opts DOTOptions) string {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "TB"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph objects {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  node [shape=box, style=rounded];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := n.Name + "\n" + n.Type
		if n.Root {
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,bold\"];\n", n.ID, label)
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.Kind == EdgeKindSupertype {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// WriteDOT writes the DOT form of the graph to w.
func WriteDOT(g *Graph, w io.Writer, opts DOTOptions) error {
	_, err := io.WriteString(w, ToDOT(g, opts))
	return err
}
