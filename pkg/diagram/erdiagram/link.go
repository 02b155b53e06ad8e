package erdiagram

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Cardinality is how many instances take part on one side of a relationship.
type Cardinality string

const (
	ZeroOrOne  Cardinality = "zero-or-one"
	ExactlyOne Cardinality = "exactly-one"
	ZeroOrMore Cardinality = "zero-or-more"
	OneOrMore  Cardinality = "one-or-more"
)

// cardinalities maps to the (left, right) crow's foot symbols.
var cardinalities = map[Cardinality][2]string{
	ZeroOrOne:  {"|o", "o|"},
	ExactlyOne: {"||", "||"},
	ZeroOrMore: {"}o", "o{"},
	OneOrMore:  {"}|", "|{"},
}

// ParseCardinality converts a name such as "zero-or-more" into a [Cardinality].
func ParseCardinality(s string) (Cardinality, error) {
	c := Cardinality(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := cardinalities[c]; !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown cardinality %q", s)
	}
	return c, nil
}

func (c Cardinality) symbols() [2]string {
	if s, ok := cardinalities[c]; ok {
		return s
	}
	return cardinalities[ExactlyOne]
}

// Link is a relationship between two entities.
type Link struct {
	Origin            *Entity
	End               *Entity
	OriginCardinality Cardinality
	EndCardinality    Cardinality
	Label             string
	// Dotted draws a non-identifying relationship.
	Dotted bool
}

// LinkOption configures a [Link] built by [NewLink].
type LinkOption func(*Link)

// WithLabel sets the relationship label.
func WithLabel(label string) LinkOption {
	return func(l *Link) { l.Label = label }
}

// WithDotted draws the relationship with a dotted line.
func WithDotted() LinkOption {
	return func(l *Link) { l.Dotted = true }
}

// NewLink relates origin and end.
func NewLink(origin, end *Entity, originCard, endCard Cardinality, opts ...LinkOption) *Link {
	l := &Link{
		Origin:            origin,
		End:               end,
		OriginCardinality: originCard,
		EndCardinality:    endCard,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// String renders `<origin><left><line><right><end> : "<label>"`.
func (l *Link) String() string {
	line := "--"
	if l.Dotted {
		line = ".."
	}
	return l.Origin.Name + l.OriginCardinality.symbols()[0] + line +
		l.EndCardinality.symbols()[1] + l.End.Name + ` : "` + l.Label + `"`
}
