package statediagram

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Transition moves from one node to another.
type Transition struct {
	From  Node
	To    Node
	Label string
}

// NewTransition creates a transition. A nil from starts at a new start
// pseudo-state and a nil to ends at a new end pseudo-state.
func NewTransition(from, to Node, label string) *Transition {
	if from == nil {
		from = Start()
	}
	if to == nil {
		to = End()
	}
	return &Transition{From: from, To: to, Label: label}
}

func (t *Transition) String() string {
	return arrow(t.From.NodeID(), t.To.NodeID(), t.Label)
}

func arrow(from, to, label string) string {
	if label == "" {
		return from + " --> " + to
	}
	return from + " --> " + to + " : " + label
}

// Choice branches to one of several states. Conditions label the branches by
// index; branches without a condition are unlabeled.
type Choice struct {
	ID         string
	From       Node
	To         []Node
	Conditions []string
}

// NewChoice declares a choice state. from may be nil.
func NewChoice(name string, from Node, to []Node, conditions ...string) *Choice {
	return &Choice{ID: diagram.NormalizeID(name), From: from, To: to, Conditions: conditions}
}

// NodeID returns the choice identifier.
func (c *Choice) NodeID() string { return c.ID }

func (c *Choice) String() string {
	var b strings.Builder
	b.WriteString("state " + c.ID + " <<choice>>")
	if c.From != nil {
		b.WriteString("\n" + arrow(c.From.NodeID(), c.ID, ""))
	}
	for i, to := range c.To {
		label := ""
		if i < len(c.Conditions) {
			label = c.Conditions[i]
		}
		b.WriteString("\n" + arrow(c.ID, to.NodeID(), label))
	}
	return b.String()
}

// Fork splits one flow into several.
type Fork struct {
	ID   string
	From Node
	To   []Node
}

// NewFork declares a fork state. from may be nil.
func NewFork(name string, from Node, to ...Node) *Fork {
	return &Fork{ID: diagram.NormalizeID(name), From: from, To: to}
}

// NodeID returns the fork identifier.
func (f *Fork) NodeID() string { return f.ID }

func (f *Fork) String() string {
	var b strings.Builder
	b.WriteString("state " + f.ID + " <<fork>>")
	if f.From != nil {
		b.WriteString("\n" + arrow(f.From.NodeID(), f.ID, ""))
	}
	for _, to := range f.To {
		b.WriteString("\n" + arrow(f.ID, to.NodeID(), ""))
	}
	return b.String()
}

// Join merges several flows into one.
type Join struct {
	ID   string
	From []Node
	To   Node
}

// NewJoin declares a join state. to may be nil.
func NewJoin(name string, from []Node, to Node) *Join {
	return &Join{ID: diagram.NormalizeID(name), From: from, To: to}
}

// NodeID returns the join identifier.
func (j *Join) NodeID() string { return j.ID }

func (j *Join) String() string {
	var b strings.Builder
	b.WriteString("state " + j.ID + " <<join>>")
	for _, from := range j.From {
		b.WriteString("\n" + arrow(from.NodeID(), j.ID, ""))
	}
	if j.To != nil {
		b.WriteString("\n" + arrow(j.ID, j.To.NodeID(), ""))
	}
	return b.String()
}
