// Package piechart builds Mermaid pie charts.
package piechart

import (
	"strconv"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Slice is one labeled value of a pie chart.
type Slice struct {
	Label string
	Value float64
}

// Options configures a [PieChart].
type Options struct {
	// ShowData renders the values next to the legend.
	ShowData bool
	Config   *diagram.Config
}

// PieChart is a Mermaid pie chart. Slices render in order.
type PieChart struct {
	diagram.Graph
	Slices   []Slice
	ShowData bool
}

// New creates a pie chart and builds its script.
func New(title string, slices []Slice, opts Options) *PieChart {
	p := &PieChart{
		Graph:    diagram.Graph{Title: title, Config: opts.Config},
		Slices:   slices,
		ShowData: opts.ShowData,
	}
	p.Build()
	return p
}

// Add appends a slice.
func (p *PieChart) Add(label string, value float64) {
	p.Slices = append(p.Slices, Slice{Label: label, Value: value})
}

// Build regenerates Script from the current slices.
func (p *PieChart) Build() {
	var b strings.Builder
	b.WriteString("pie")
	if p.ShowData {
		b.WriteString(" showData")
	}
	for _, s := range p.Slices {
		b.WriteString("\n\t\"" + s.Label + "\" : " + strconv.FormatFloat(s.Value, 'f', -1, 64))
	}
	b.WriteString("\n")
	p.SetBody(b.String())
}

var _ diagram.Diagram = (*PieChart)(nil)
