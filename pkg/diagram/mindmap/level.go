package mindmap

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// LevelShape is the node shape of a level or of the mindmap root.
type LevelShape string

const (
	ShapeDefault       LevelShape = "default"
	ShapeSquare        LevelShape = "square"
	ShapeRoundedSquare LevelShape = "rounded-square"
	ShapeCircle        LevelShape = "circle"
	ShapeBang          LevelShape = "bang"
	ShapeCloud         LevelShape = "cloud"
	ShapeHexagon       LevelShape = "hexagon"
)

var shapeBrackets = map[LevelShape][2]string{
	ShapeDefault:       {"", ""},
	ShapeSquare:        {"[", "]"},
	ShapeRoundedSquare: {"(", ")"},
	ShapeCircle:        {"((", "))"},
	ShapeBang:          {"))", "(("},
	ShapeCloud:         {")", "("},
	ShapeHexagon:       {"{{", "}}"},
}

// Brackets returns the opening and closing delimiters of the shape.
// Unknown shapes have none.
func (s LevelShape) Brackets() (start, end string) {
	b := shapeBrackets[s]
	return b[0], b[1]
}

// ParseLevelShape converts a shape name into a [LevelShape].
// An empty name yields [ShapeDefault].
func ParseLevelShape(s string) (LevelShape, error) {
	shape := LevelShape(strings.ToLower(strings.TrimSpace(s)))
	if shape == "" {
		return ShapeDefault, nil
	}
	if _, ok := shapeBrackets[shape]; !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown mindmap shape %q", s)
	}
	return shape, nil
}

// Level is a node of the mindmap tree.
type Level struct {
	ID       string
	Name     string
	Children []*Level
	Shape    LevelShape
	Icon     *diagram.Icon
}

// LevelOption configures a [Level] built by [NewLevel].
type LevelOption func(*Level)

// WithChildren appends child levels.
func WithChildren(children ...*Level) LevelOption {
	return func(l *Level) { l.Children = append(l.Children, children...) }
}

// WithShape sets the level shape.
func WithShape(shape LevelShape) LevelOption {
	return func(l *Level) { l.Shape = shape }
}

// WithIcon sets the icon shown next to a leaf level.
func WithIcon(icon diagram.Icon) LevelOption {
	return func(l *Level) { l.Icon = &icon }
}

// NewLevel creates a level.
func NewLevel(name string, opts ...LevelOption) *Level {
	l := &Level{ID: diagram.NormalizeID(name), Name: name, Shape: ShapeDefault}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddChild appends a child level.
func (l *Level) AddChild(child *Level) {
	l.Children = append(l.Children, child)
}

// String renders the level subtree at the depth of a first level below the
// mindmap root.
func (l *Level) String() string {
	var b strings.Builder
	l.write(&b, 2)
	return b.String()
}

func (l *Level) write(b *strings.Builder, depth int) {
	tabs := strings.Repeat("\t", depth)
	start, end := l.Shape.Brackets()
	b.WriteString(tabs + start + l.Name + end + "\n")
	if len(l.Children) == 0 {
		if l.Icon != nil {
			b.WriteString(tabs + "::icon(" + l.Icon.Type + " " + l.Icon.Name + ")\n")
		}
		return
	}
	for _, c := range l.Children {
		c.write(b, depth+1)
	}
}
