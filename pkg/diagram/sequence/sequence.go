package sequence

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Options configures a [Diagram].
type Options struct {
	// AutoNumber numbers every message.
	AutoNumber bool
	Config     *diagram.Config
}

// Diagram is a Mermaid sequence diagram.
type Diagram struct {
	diagram.Graph
	Elements   []Element
	AutoNumber bool
}

// New creates a sequence diagram and builds its script.
func New(title string, elements []Element, opts Options) *Diagram {
	d := &Diagram{
		Graph:      diagram.Graph{Title: title, Config: opts.Config},
		Elements:   elements,
		AutoNumber: opts.AutoNumber,
	}
	d.Build()
	return d
}

// Build regenerates Script from the current elements.
func (d *Diagram) Build() {
	var b strings.Builder
	b.WriteString("sequenceDiagram\n")
	if d.AutoNumber {
		b.WriteString("\tautonumber\n")
	}
	writeElements(&b, d.Elements)
	d.SetBody(b.String())
}

var _ diagram.Diagram = (*Diagram)(nil)
