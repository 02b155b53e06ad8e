// Package timeline builds Mermaid timelines.
package timeline

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// EventSeparator splits one description into several entries for the
// same date.
const EventSeparator = " : "

// Event is a dated entry of a timeline.
type Event struct {
	Date        string
	Description string
}

// Timeline is a Mermaid timeline.
type Timeline struct {
	diagram.Graph
	Events []Event
}

// New creates a timeline and builds its script. cfg may be nil.
func New(title string, events []Event, cfg *diagram.Config) *Timeline {
	t := &Timeline{
		Graph:  diagram.Graph{Title: title, Config: cfg},
		Events: events,
	}
	t.Build()
	return t
}

// Build regenerates Script from the current events.
func (t *Timeline) Build() {
	var b strings.Builder
	b.WriteString("timeline")
	for _, e := range t.Events {
		for _, part := range strings.Split(e.Description, EventSeparator) {
			b.WriteString("\n\t" + e.Date + " : " + part)
		}
	}
	b.WriteString("\n")
	t.SetBody(b.String())
}

var _ diagram.Diagram = (*Timeline)(nil)
