package reqdiagram

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// RequirementDiagram is a Mermaid requirement diagram.
type RequirementDiagram struct {
	diagram.Graph
	Elements     []*Element
	Requirements []*Requirement
	Links        []*Link
}

// New creates a requirement diagram and builds its script. cfg may be nil.
func New(title string, elements []*Element, requirements []*Requirement, links []*Link, cfg *diagram.Config) *RequirementDiagram {
	d := &RequirementDiagram{
		Graph:        diagram.Graph{Title: title, Config: cfg},
		Elements:     elements,
		Requirements: requirements,
		Links:        links,
	}
	d.Build()
	return d
}

// Build regenerates Script. Blocks follow each other without blank lines.
func (d *RequirementDiagram) Build() {
	var b strings.Builder
	b.WriteString("requirementDiagram\n")
	for _, e := range d.Elements {
		b.WriteString(e.String())
	}
	for _, r := range d.Requirements {
		b.WriteString(r.String())
	}
	for _, l := range d.Links {
		b.WriteString(l.String() + "\n")
	}
	d.SetBody(b.String())
}

var _ diagram.Diagram = (*RequirementDiagram)(nil)
