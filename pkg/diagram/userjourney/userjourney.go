// Package userjourney builds Mermaid user journey diagrams.
//
// A journey is a list of [Section] values, each holding scored [Task]
// values. Tasks may also be placed directly in the journey.
package userjourney

import (
	"strconv"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

// Actor takes part in a task.
type Actor struct {
	Name string
}

// Element is a section or a task.
type Element interface {
	String() string
}

// Task is a scored step performed by one or more actors.
type Task struct {
	Name   string
	Score  int
	Actors []Actor
}

// NewTask creates a task.
func NewTask(name string, score int, actors ...Actor) *Task {
	return &Task{Name: name, Score: score, Actors: actors}
}

func (t *Task) String() string {
	names := make([]string, len(t.Actors))
	for i, a := range t.Actors {
		names[i] = a.Name
	}
	return "\t\t" + t.Name + ": " + strconv.Itoa(t.Score) + " : " + strings.Join(names, ", ")
}

// Section groups tasks under a heading.
type Section struct {
	Name  string
	Tasks []Element
}

// NewSection creates a section.
func NewSection(name string, tasks ...Element) *Section {
	return &Section{Name: name, Tasks: tasks}
}

// String renders the heading and one line per task, each line terminated.
func (s *Section) String() string {
	var b strings.Builder
	b.WriteString("\tsection " + s.Name + "\n")
	for _, t := range s.Tasks {
		b.WriteString(t.String() + "\n")
	}
	return b.String()
}

// UserJourney is a Mermaid journey diagram.
type UserJourney struct {
	diagram.Graph
	Sections []Element
}

// New creates a user journey and builds its script. cfg may be nil.
func New(title string, sections []Element, cfg *diagram.Config) *UserJourney {
	u := &UserJourney{
		Graph:    diagram.Graph{Title: title, Config: cfg},
		Sections: sections,
	}
	u.Build()
	return u
}

// Build regenerates Script from the current sections.
func (u *UserJourney) Build() {
	var b strings.Builder
	b.WriteString("journey\n\ttitle " + u.Title + "\n")
	for _, s := range u.Sections {
		b.WriteString(s.String() + "\n")
	}
	u.SetBody(b.String())
}

var _ diagram.Diagram = (*UserJourney)(nil)
