package flowchart

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Options configures a [FlowChart].
type Options struct {
	// Orientation is the chart direction; empty means top to bottom.
	Orientation diagram.Direction
	Config      *diagram.Config
}

// FlowChart is a Mermaid flowchart.
type FlowChart struct {
	diagram.Graph
	Nodes       []*Node
	Links       []*Link
	Orientation diagram.Direction
}

// New creates a flowchart and builds its script.
func New(title string, nodes []*Node, links []*Link, opts Options) *FlowChart {
	orientation := opts.Orientation
	if orientation == "" {
		orientation = diagram.TopToBottom
	}
	f := &FlowChart{
		Graph:       diagram.Graph{Title: title, Config: opts.Config},
		Nodes:       nodes,
		Links:       links,
		Orientation: orientation,
	}
	f.Build()
	return f
}

// Styles returns the styles of the top-level nodes, one per name.
func (f *FlowChart) Styles() []diagram.Style {
	groups := make([][]diagram.Style, len(f.Nodes))
	for i, n := range f.Nodes {
		groups[i] = n.Styles
	}
	return diagram.UniqueStyles(groups...)
}

// Build regenerates Script from the current nodes and links.
func (f *FlowChart) Build() {
	var b strings.Builder
	b.WriteString("flowchart ")
	b.WriteString(string(f.Orientation))
	for _, s := range f.Styles() {
		b.WriteString("\n\t")
		b.WriteString(s.String())
	}
	for _, n := range f.Nodes {
		b.WriteString("\n")
		b.WriteString(diagram.Indent(n.String(), "\t"))
	}
	for _, l := range f.Links {
		b.WriteString("\n\t")
		b.WriteString(l.String())
	}
	b.WriteString("\n")
	f.SetBody(b.String())
}

var _ diagram.Diagram = (*FlowChart)(nil)
