package flowchart

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Node is a flowchart vertex. A node with SubNodes is a subgraph.
type Node struct {
	ID        string
	Content   string
	Shape     Shape
	SubNodes  []*Node
	Href      string
	HrefType  HrefType
	Styles    []diagram.Style
	Direction diagram.Direction
}

// NodeOption configures a [Node] built by [NewNode].
type NodeOption func(*Node)

// WithContent sets the displayed label. An empty label keeps the name.
func WithContent(content string) NodeOption {
	return func(n *Node) {
		if content != "" {
			n.Content = content
		}
	}
}

// WithShape sets the node shape.
func WithShape(shape Shape) NodeOption {
	return func(n *Node) { n.Shape = shape }
}

// WithSubNodes turns the node into a subgraph containing nodes.
func WithSubNodes(nodes ...*Node) NodeOption {
	return func(n *Node) { n.SubNodes = append(n.SubNodes, nodes...) }
}

// WithHref adds a click handler opening href in the given context.
func WithHref(href string, target HrefType) NodeOption {
	return func(n *Node) {
		n.Href = href
		if target != "" {
			n.HrefType = target
		}
	}
}

// WithStyles attaches class styles, rendered in the given order.
func WithStyles(styles ...diagram.Style) NodeOption {
	return func(n *Node) { n.Styles = append(n.Styles, styles...) }
}

// WithDirection sets the subgraph direction.
func WithDirection(d diagram.Direction) NodeOption {
	return func(n *Node) { n.Direction = d }
}

// NewNode creates a node whose ID is the normalized name and whose label is
// the name itself.
func NewNode(name string, opts ...NodeOption) *Node {
	n := &Node{
		ID:        diagram.NormalizeID(name),
		Content:   name,
		Shape:     ShapeNormal,
		HrefType:  HrefBlank,
		Direction: diagram.LeftToRight,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// String renders the node, its click handler and its class assignments.
func (n *Node) String() string {
	var b strings.Builder
	if len(n.SubNodes) > 0 {
		fmt.Fprintf(&b, "subgraph %s [\"%s\"]", n.ID, n.Content)
		if n.Direction != "" {
			fmt.Fprintf(&b, "\n\tdirection %s", n.Direction)
		}
		for _, sub := range n.SubNodes {
			b.WriteString("\n")
			b.WriteString(diagram.Indent(sub.String(), "\t"))
		}
		b.WriteString("\nend")
	} else {
		start, end := n.Shape.Brackets()
		fmt.Fprintf(&b, "%s%s\"%s\"%s", n.ID, start, n.Content, end)
		if n.Href != "" {
			fmt.Fprintf(&b, "\nclick %s \"%s\" %s", n.ID, n.Href, n.HrefType.target())
		}
	}
	for _, s := range n.Styles {
		fmt.Fprintf(&b, "\n%s:::%s", n.ID, s.Name)
	}
	return b.String()
}
