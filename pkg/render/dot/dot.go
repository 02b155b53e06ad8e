package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/diagram/flowchart"
)

var shapes = map[flowchart.Shape]string{
	flowchart.ShapeNormal:           "box",
	flowchart.ShapeRoundEdge:        "box",
	flowchart.ShapeStadium:          "box",
	flowchart.ShapeSubroutine:       "box",
	flowchart.ShapeCylindrical:      "cylinder",
	flowchart.ShapeCircle:           "circle",
	flowchart.ShapeLabel:            "cds",
	flowchart.ShapeRhombus:          "diamond",
	flowchart.ShapeHexagon:          "hexagon",
	flowchart.ShapeParallelogram:    "parallelogram",
	flowchart.ShapeParallelogramAlt: "parallelogram",
	flowchart.ShapeTrapezoid:        "trapezium",
	flowchart.ShapeTrapezoidAlt:     "invtrapezium",
	flowchart.ShapeDoubleCircle:     "doublecircle",
}

var heads = map[flowchart.LinkHead]string{
	flowchart.HeadNone:      "none",
	flowchart.HeadArrow:     "normal",
	flowchart.HeadLeftArrow: "normal",
	flowchart.HeadBullet:    "dot",
	flowchart.HeadCross:     "tee",
}

var rankdirs = map[diagram.Direction]string{
	diagram.TopToBottom: "TB",
	diagram.BottomToTop: "BT",
	diagram.LeftToRight: "LR",
	diagram.RightToLeft: "RL",
}

// FromFlowChart returns the DOT source for fc.
func FromFlowChart(fc *flowchart.FlowChart) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	rankdir := rankdirs[fc.Orientation]
	if rankdir == "" {
		rankdir = "TB"
	}
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontname=\"Helvetica\"];\n")
	if fc.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", fc.Title)
	}
	buf.WriteString("\n")

	for _, n := range fc.Nodes {
		writeNode(&buf, n, "  ")
	}

	buf.WriteString("\n")
	for _, l := range fc.Links {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", l.Origin.ID, l.End.ID, strings.Join(edgeAttrs(l), ", "))
	}
	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n *flowchart.Node, indent string) {
	if len(n.SubNodes) > 0 {
		fmt.Fprintf(buf, "%ssubgraph %q {\n", indent, "cluster_"+n.ID)
		fmt.Fprintf(buf, "%s  label=%q;\n", indent, n.Content)
		for _, sub := range n.SubNodes {
			writeNode(buf, sub, indent+"  ")
		}
		fmt.Fprintf(buf, "%s}\n", indent)
		return
	}
	fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(nodeAttrs(n), ", "))
}

func nodeAttrs(n *flowchart.Node) []string {
	shape, ok := shapes[n.Shape]
	if !ok {
		shape = "box"
	}
	attrs := []string{fmt.Sprintf("label=%q", n.Content), "shape=" + shape}

	switch n.Shape {
	case flowchart.ShapeRoundEdge, flowchart.ShapeStadium:
		attrs = append(attrs, `style="rounded,filled"`)
	case flowchart.ShapeSubroutine:
		attrs = append(attrs, "peripheries=2")
	}

	for _, s := range n.Styles {
		if s.Fill != "" {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", s.Fill))
		}
		if s.Stroke != "" {
			attrs = append(attrs, fmt.Sprintf("color=%q", s.Stroke))
		}
		if s.Color != "" {
			attrs = append(attrs, fmt.Sprintf("fontcolor=%q", s.Color))
		}
	}
	if n.Href != "" {
		attrs = append(attrs, fmt.Sprintf("URL=%q", n.Href))
	}
	return attrs
}

func edgeAttrs(l *flowchart.Link) []string {
	var attrs []string
	if l.Message != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", l.Message))
	}

	switch l.Shape {
	case flowchart.LinkDotted:
		attrs = append(attrs, "style=dotted")
	case flowchart.LinkThick:
		attrs = append(attrs, "penwidth=3")
	case flowchart.LinkHidden:
		attrs = append(attrs, "style=invis")
	}

	right := heads[l.HeadRight]
	if right == "" {
		right = "none"
	}
	left := heads[l.HeadLeft]
	if left == "" {
		left = "none"
	}
	attrs = append(attrs, "arrowhead="+right)
	if left != "none" {
		attrs = append(attrs, "dir=both", "arrowtail="+left)
	}
	return attrs
}
