package reqdiagram

// LinkType is the relationship between two nodes.
type LinkType string

const (
	LinkContains  LinkType = "contains"
	LinkCopies    LinkType = "copies"
	LinkDerives   LinkType = "derives"
	LinkSatisfies LinkType = "satisfies"
	LinkVerifies  LinkType = "verifies"
	LinkRefines   LinkType = "refines"
	LinkTraces    LinkType = "traces"
)

// Node is an element or a requirement.
type Node interface {
	NodeName() string
}

// Link relates a source node to a destination node.
type Link struct {
	Source      Node
	Destination Node
	Type        LinkType
}

// NewLink creates a link.
func NewLink(source, destination Node, typ LinkType) *Link {
	return &Link{Source: source, Destination: destination, Type: typ}
}

func (l *Link) String() string {
	return l.Source.NodeName() + " - " + string(l.Type) + " -> " + l.Destination.NodeName()
}
