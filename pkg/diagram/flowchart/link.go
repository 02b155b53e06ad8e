package flowchart

import "fmt"

// Link connects two nodes. It references the nodes, it does not own them.
type Link struct {
	Origin    *Node
	End       *Node
	Shape     LinkShape
	HeadLeft  LinkHead
	HeadRight LinkHead
	Message   string
}

// LinkOption configures a [Link] built by [NewLink].
type LinkOption func(*Link)

// WithLinkShape sets the line body.
func WithLinkShape(shape LinkShape) LinkOption {
	return func(l *Link) { l.Shape = shape }
}

// WithHeads sets both end markers.
func WithHeads(left, right LinkHead) LinkOption {
	return func(l *Link) {
		l.HeadLeft = left
		l.HeadRight = right
	}
}

// WithMessage sets the text drawn on the link.
func WithMessage(msg string) LinkOption {
	return func(l *Link) { l.Message = msg }
}

// NewLink creates a normal link from origin to end with an arrow head on the
// right.
func NewLink(origin, end *Node, opts ...LinkOption) *Link {
	l := &Link{
		Origin:    origin,
		End:       end,
		Shape:     LinkNormal,
		HeadLeft:  HeadNone,
		HeadRight: HeadArrow,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// String renders "<origin> <left><shape><right>[|msg|] <end>".
func (l *Link) String() string {
	arrow := l.HeadLeft.symbol() + l.Shape.symbol() + l.HeadRight.symbol()
	if l.Message != "" {
		return fmt.Sprintf("%s %s|%s| %s", l.Origin.ID, arrow, l.Message, l.End.ID)
	}
	return fmt.Sprintf("%s %s %s", l.Origin.ID, arrow, l.End.ID)
}
