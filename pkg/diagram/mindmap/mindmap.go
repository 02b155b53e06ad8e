package mindmap

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Options configures a [Mindmap].
type Options struct {
	// Shape wraps the root title.
	Shape  LevelShape
	Config *diagram.Config
}

// Mindmap is a Mermaid mindmap rooted at its title.
type Mindmap struct {
	diagram.Graph
	Levels []*Level
	Shape  LevelShape
}

// New creates a mindmap and builds its script.
func New(title string, levels []*Level, opts Options) *Mindmap {
	shape := opts.Shape
	if shape == "" {
		shape = ShapeDefault
	}
	m := &Mindmap{
		Graph:  diagram.Graph{Title: title, Config: opts.Config},
		Levels: levels,
		Shape:  shape,
	}
	m.Build()
	return m
}

// Build regenerates Script from the current levels.
func (m *Mindmap) Build() {
	start, end := m.Shape.Brackets()
	var b strings.Builder
	b.WriteString("mindmap\n\t" + start + m.Title + end + "\n")
	for _, l := range m.Levels {
		b.WriteString(l.String())
	}
	m.SetBody(b.String())
}

var _ diagram.Diagram = (*Mindmap)(nil)
