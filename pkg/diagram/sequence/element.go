package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Element is anything that can appear in the body of a sequence diagram.
type Element interface {
	String() string
}

// Lifeline is an actor or participant that messages and notes refer to.
type Lifeline interface {
	Element
	Identifier() string
}

// Actor is a lifeline drawn as a stick figure.
type Actor struct {
	Name string
}

// NewActor creates an actor. Actors are referenced by name verbatim.
func NewActor(name string) *Actor { return &Actor{Name: name} }

// Identifier returns the actor name.
func (a *Actor) Identifier() string { return a.Name }

func (a *Actor) String() string { return "\tactor " + a.Name + "\n" }

// Participant is a lifeline drawn as a box.
type Participant struct {
	ID   string
	Name string
}

// NewParticipant creates a participant referenced by its normalized name.
func NewParticipant(name string) *Participant {
	return &Participant{ID: diagram.NormalizeID(name), Name: name}
}

// Identifier returns the participant ID.
func (p *Participant) Identifier() string { return p.ID }

func (p *Participant) String() string {
	return "\tparticipant " + p.ID + " as " + p.Name + "\n"
}

// Box groups lifelines under a label.
type Box struct {
	Name    string
	Members []Lifeline
}

// NewBox creates a box around members.
func NewBox(name string, members ...Lifeline) *Box {
	return &Box{Name: name, Members: members}
}

func (b *Box) String() string {
	var sb strings.Builder
	sb.WriteString("\tbox " + b.Name + "\n")
	for _, m := range b.Members {
		sb.WriteString(m.String())
	}
	sb.WriteString("\tend\n")
	return sb.String()
}

// NotePosition places a note relative to its lifelines.
type NotePosition string

const (
	LeftOf  NotePosition = "left of"
	RightOf NotePosition = "right of"
	Over    NotePosition = "over"
)

// ParseNotePosition accepts "left of", "left-of", "right of", "right-of" or "over".
func ParseNotePosition(s string) (NotePosition, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", " ") {
	case "left of":
		return LeftOf, nil
	case "right of":
		return RightOf, nil
	case "over", "":
		return Over, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown note position %q", s)
}

// Note is a text note beside or over lifelines.
type Note struct {
	Text     string
	Position NotePosition
	Targets  []Lifeline
}

// NewNote creates a note. An empty position means [Over]. Spanning more than
// one lifeline is only allowed with [Over].
func NewNote(text string, pos NotePosition, targets ...Lifeline) (*Note, error) {
	if pos == "" {
		pos = Over
	}
	switch pos {
	case LeftOf, RightOf, Over:
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown note position %q", pos)
	}
	if len(targets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "note needs at least one lifeline")
	}
	if len(targets) > 1 && pos != Over {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"note spanning %d lifelines must be placed over them, got %q", len(targets), pos)
	}
	return &Note{Text: text, Position: pos, Targets: targets}, nil
}

func (n *Note) String() string {
	ids := make([]string, len(n.Targets))
	for i, t := range n.Targets {
		ids[i] = t.Identifier()
	}
	return fmt.Sprintf("\tNote %s %s: %s\n", n.Position, strings.Join(ids, ","), n.Text)
}

// Rect highlights elements with a background color.
type Rect struct {
	Color    [3]int
	Elements []Element
}

// NewRect creates a colored rect. rgb must have exactly three components in
// [0, 255].
func NewRect(rgb []int, elements ...Element) (*Rect, error) {
	if err := errors.ValidateRGB(rgb); err != nil {
		return nil, err
	}
	return &Rect{Color: [3]int{rgb[0], rgb[1], rgb[2]}, Elements: elements}, nil
}

func (r *Rect) String() string {
	var b strings.Builder
	b.WriteString("\trect rgb(")
	b.WriteString(strconv.Itoa(r.Color[0]) + "," + strconv.Itoa(r.Color[1]) + "," + strconv.Itoa(r.Color[2]))
	b.WriteString(")\n")
	writeElements(&b, r.Elements)
	b.WriteString("\tend\n")
	return b.String()
}

func writeElements(b *strings.Builder, elements []Element) {
	for _, e := range elements {
		b.WriteString(e.String())
	}
}
