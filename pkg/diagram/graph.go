package diagram

import (
	"io"
	"strings"
)

// Diagram is implemented by every diagram family.
type Diagram interface {
	// Name returns the diagram title.
	Name() string
	// String returns the complete Mermaid script.
	String() string
	// Save writes the script to path, see [Graph.Save].
	Save(path string) error
}

// Graph is the base of every diagram: a title, an optional theme directive
// and the assembled script. A Graph on its own is a raw diagram whose Script
// is used verbatim, as returned by [Load].
type Graph struct {
	Title  string
	Config *Config
	Script string
}

// NewGraph returns a raw diagram with the given script.
func NewGraph(title, script string) *Graph {
	return &Graph{Title: title, Script: script}
}

// Name returns the diagram title.
func (g *Graph) Name() string { return g.Title }

// String returns the script.
func (g *Graph) String() string { return g.Script }

// SetBody replaces Script with the front matter, the config block (if any)
// and body. body starts with the diagram keyword.
func (g *Graph) SetBody(body string) {
	var b strings.Builder
	b.WriteString("---\ntitle: ")
	b.WriteString(g.Title)
	b.WriteString("\n---\n")
	if g.Config != nil {
		b.WriteString(g.Config.String())
		b.WriteString("\n")
	}
	b.WriteString(body)
	g.Script = b.String()
}

// WriteTo writes the script to w.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Script)
	return int64(n), err
}

var _ Diagram = (*Graph)(nil)
