package statediagram

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Options configures a [StateDiagram].
type Options struct {
	// Version is the keyword version; "v1" renders the bare keyword and
	// empty means "v2".
	Version   string
	Direction diagram.Direction
	Config    *diagram.Config
}

// StateDiagram is a Mermaid state diagram.
type StateDiagram struct {
	diagram.Graph
	States      []Node
	Transitions []Element
	Version     string
	Direction   diagram.Direction
}

// New creates a state diagram and builds its script.
func New(title string, states []Node, transitions []Element, opts Options) *StateDiagram {
	version := opts.Version
	if version == "" {
		version = "v2"
	}
	d := &StateDiagram{
		Graph:       diagram.Graph{Title: title, Config: opts.Config},
		States:      states,
		Transitions: transitions,
		Version:     version,
		Direction:   opts.Direction,
	}
	d.Build()
	return d
}

// Styles returns the styles of the top-level states, one per name.
func (d *StateDiagram) Styles() []diagram.Style {
	var groups [][]diagram.Style
	for _, s := range d.States {
		if st, ok := s.(styled); ok {
			groups = append(groups, st.StateStyles())
		}
	}
	return diagram.UniqueStyles(groups...)
}

// Build regenerates Script from the current states and transitions.
func (d *StateDiagram) Build() {
	var b strings.Builder
	b.WriteString("stateDiagram")
	if d.Version != "v1" {
		b.WriteString("-" + d.Version)
	}
	if d.Direction != "" {
		b.WriteString("\n\tdirection " + string(d.Direction))
	}
	for _, s := range d.Styles() {
		b.WriteString("\n\t" + s.String())
	}
	for _, s := range d.States {
		b.WriteString("\n" + diagram.Indent(s.String(), "\t"))
	}
	for _, t := range d.Transitions {
		b.WriteString("\n" + diagram.Indent(t.String(), "\t"))
	}
	b.WriteString("\n")
	d.SetBody(b.String())
}

var _ diagram.Diagram = (*StateDiagram)(nil)
