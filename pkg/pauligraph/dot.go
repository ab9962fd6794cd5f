package pauligraph

import (
	"bytes"
	"fmt"
	"io"
)

// DOTOptions configures [Graph.WriteDOT].
type DOTOptions struct {
	// Frame adds a note node listing the frame rows.
	Frame bool
}

// DOT returns the graph in Graphviz DOT format. Each vertex is labelled
// with its tensor and angle.
func (pg *Graph) DOT(opts DOTOptions) string {
	var buf bytes.Buffer
	_ = pg.WriteDOT(&buf, opts)
	return buf.String()
}

// WriteDOT writes the graph in Graphviz DOT format to w. The output is for
// diagnostics only and carries no compatibility guarantee.
func (pg *Graph) WriteDOT(w io.Writer, opts DOTOptions) error {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, v := range pg.g.Nodes() {
		gd, _ := pg.g.Node(v)
		fmt.Fprintf(&buf, "  %d [label=%q];\n", v, gd.String())
	}

	buf.WriteString("\n")
	for _, e := range pg.g.Edges() {
		from, _ := pg.g.Source(e)
		to, _ := pg.g.Target(e)
		fmt.Fprintf(&buf, "  %d -> %d;\n", from, to)
	}

	if opts.Frame {
		fmt.Fprintf(&buf, "\n  frame [shape=note, fillcolor=lightgrey, label=%q];\n", pg.frame.String())
	}

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}
