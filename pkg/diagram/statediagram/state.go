package statediagram

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Element is anything that renders into the state diagram body.
type Element interface {
	String() string
}

// Node is a state a transition can start or end at.
type Node interface {
	Element
	NodeID() string
}

type styled interface {
	StateStyles() []diagram.Style
}

// StateOption configures the states built by [NewState], [NewComposite]
// and [NewConcurrent].
type StateOption func(*stateConfig)

type stateConfig struct {
	content   string
	styles    []diagram.Style
	direction diagram.Direction
}

// WithContent sets the displayed description. An empty value keeps the name.
func WithContent(content string) StateOption {
	return func(c *stateConfig) {
		if content != "" {
			c.content = content
		}
	}
}

// WithStyles attaches class styles, rendered in the given order.
func WithStyles(styles ...diagram.Style) StateOption {
	return func(c *stateConfig) { c.styles = append(c.styles, styles...) }
}

// WithDirection sets the layout direction inside a composite state.
// Plain states ignore it.
func WithDirection(d diagram.Direction) StateOption {
	return func(c *stateConfig) { c.direction = d }
}

func newConfig(name string, opts []StateOption) stateConfig {
	c := stateConfig{content: name}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// State is a simple state.
type State struct {
	ID      string
	Content string
	Styles  []diagram.Style
}

// NewState creates a state identified by the normalized name.
func NewState(name string, opts ...StateOption) *State {
	c := newConfig(name, opts)
	return &State{ID: diagram.NormalizeID(name), Content: c.content, Styles: c.styles}
}

// NodeID returns the state identifier.
func (s *State) NodeID() string { return s.ID }

// StateStyles returns the attached styles.
func (s *State) StateStyles() []diagram.Style { return s.Styles }

func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : %s", s.ID, s.Content)
	for _, st := range s.Styles {
		fmt.Fprintf(&b, "\n%s:::%s", s.ID, st.Name)
	}
	return b.String()
}

// Composite is a state containing its own sub-states and transitions.
type Composite struct {
	State
	SubStates   []Node
	Transitions []Element
	Direction   diagram.Direction
}

// NewComposite creates a composite state.
func NewComposite(name string, subStates []Node, transitions []Element, opts ...StateOption) *Composite {
	c := newConfig(name, opts)
	return &Composite{
		State:       State{ID: diagram.NormalizeID(name), Content: c.content, Styles: c.styles},
		SubStates:   subStates,
		Transitions: transitions,
		Direction:   c.direction,
	}
}

func (c *Composite) String() string {
	var b strings.Builder
	b.WriteString(c.State.String())
	if len(c.SubStates) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "\nstate %s {", c.ID)
	if c.Direction != "" {
		fmt.Fprintf(&b, "\n\tdirection %s", c.Direction)
	}
	writeIndented(&b, c.SubStates, c.Transitions)
	b.WriteString("\n}")
	return b.String()
}

// Region is one concurrent region of a [Concurrent] state.
type Region struct {
	States      []Node
	Transitions []Element
}

// Concurrent is a composite state split into concurrent regions.
type Concurrent struct {
	State
	Regions   []Region
	Direction diagram.Direction
}

// NewConcurrent creates a concurrent state.
func NewConcurrent(name string, regions []Region, opts ...StateOption) *Concurrent {
	c := newConfig(name, opts)
	return &Concurrent{
		State:     State{ID: diagram.NormalizeID(name), Content: c.content, Styles: c.styles},
		Regions:   regions,
		Direction: c.direction,
	}
}

func (c *Concurrent) String() string {
	var b strings.Builder
	b.WriteString(c.State.String())
	if len(c.Regions) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "\nstate %s {", c.ID)
	if c.Direction != "" {
		fmt.Fprintf(&b, "\n\tdirection %s", c.Direction)
	}
	for i, r := range c.Regions {
		if i > 0 {
			b.WriteString("\n\t--")
		}
		writeIndented(&b, r.States, r.Transitions)
	}
	b.WriteString("\n}")
	return b.String()
}

func writeIndented(b *strings.Builder, states []Node, transitions []Element) {
	for _, s := range states {
		b.WriteString("\n")
		b.WriteString(diagram.Indent(s.String(), "\t"))
	}
	for _, t := range transitions {
		b.WriteString("\n")
		b.WriteString(diagram.Indent(t.String(), "\t"))
	}
}

// PseudoID is the identifier of the start and end pseudo-states.
const PseudoID = "[*]"

// Pseudo is the start or end pseudo-state.
type Pseudo struct{}

// Start returns a start pseudo-state.
func Start() *Pseudo { return &Pseudo{} }

// End returns an end pseudo-state.
func End() *Pseudo { return &Pseudo{} }

// NodeID returns "[*]".
func (*Pseudo) NodeID() string { return PseudoID }

func (*Pseudo) String() string { return PseudoID }
