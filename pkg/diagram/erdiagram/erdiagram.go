package erdiagram

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// ERDiagram is a Mermaid entity relationship diagram.
type ERDiagram struct {
	diagram.Graph
	Entities []*Entity
	Links    []*Link
}

// New creates an ER diagram and builds its script. config may be nil.
func New(title string, entities []*Entity, links []*Link, config *diagram.Config) *ERDiagram {
	d := &ERDiagram{
		Graph:    diagram.Graph{Title: title, Config: config},
		Entities: entities,
		Links:    links,
	}
	d.Build()
	return d
}

// Build regenerates Script from the current entities and links.
func (d *ERDiagram) Build() {
	var b strings.Builder
	b.WriteString("erDiagram")
	for _, e := range d.Entities {
		b.WriteString("\n")
		b.WriteString(diagram.Indent(e.String(), "\t"))
	}
	for _, l := range d.Links {
		b.WriteString("\n\t")
		b.WriteString(l.String())
	}
	b.WriteString("\n")
	d.SetBody(b.String())
}

var _ diagram.Diagram = (*ERDiagram)(nil)
