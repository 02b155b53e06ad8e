package flowchart

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Shape is a node shape.
type Shape string

const (
	ShapeNormal           Shape = "normal"
	ShapeRoundEdge        Shape = "round-edge"
	ShapeStadium          Shape = "stadium-shape"
	ShapeSubroutine       Shape = "subroutine-shape"
	ShapeCylindrical      Shape = "cylindrical"
	ShapeCircle           Shape = "circle"
	ShapeLabel            Shape = "label-shape"
	ShapeRhombus          Shape = "rhombus"
	ShapeHexagon          Shape = "hexagon"
	ShapeParallelogram    Shape = "parallelogram"
	ShapeParallelogramAlt Shape = "parallelogram-alt"
	ShapeTrapezoid        Shape = "trapezoid"
	ShapeTrapezoidAlt     Shape = "trapezoid-alt"
	ShapeDoubleCircle     Shape = "double-circle"
)

type brackets struct{ start, end string }

var shapeBrackets = map[Shape]brackets{
	ShapeNormal:           {"[", "]"},
	ShapeRoundEdge:        {"(", ")"},
	ShapeStadium:          {"([", "])"},
	ShapeSubroutine:       {"[[", "]]"},
	ShapeCylindrical:      {"[(", ")]"},
	ShapeCircle:           {"((", "))"},
	ShapeLabel:            {">", "]"},
	ShapeRhombus:          {"{", "}"},
	ShapeHexagon:          {"{{", "}}"},
	ShapeParallelogram:    {"[/", "/]"},
	ShapeParallelogramAlt: {"[\\", "\\]"},
	ShapeTrapezoid:        {"[/", "\\]"},
	ShapeTrapezoidAlt:     {"[\\", "/]"},
	ShapeDoubleCircle:     {"(((", ")))"},
}

// Shapes returns every known node shape.
func Shapes() []Shape {
	return []Shape{
		ShapeNormal, ShapeRoundEdge, ShapeStadium, ShapeSubroutine, ShapeCylindrical,
		ShapeCircle, ShapeLabel, ShapeRhombus, ShapeHexagon, ShapeParallelogram,
		ShapeParallelogramAlt, ShapeTrapezoid, ShapeTrapezoidAlt, ShapeDoubleCircle,
	}
}

// ParseShape converts a shape name such as "double-circle" into a [Shape].
func ParseShape(s string) (Shape, error) {
	shape := Shape(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := shapeBrackets[shape]; !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown node shape %q", s)
	}
	return shape, nil
}

// Brackets returns the opening and closing bracket strings of the shape.
// Unknown shapes use the normal brackets.
func (s Shape) Brackets() (start, end string) {
	b, ok := shapeBrackets[s]
	if !ok {
		b = shapeBrackets[ShapeNormal]
	}
	return b.start, b.end
}

// LinkShape is the body of a link line.
type LinkShape string

const (
	LinkNormal LinkShape = "normal"
	LinkDotted LinkShape = "dotted"
	LinkThick  LinkShape = "thick"
	LinkHidden LinkShape = "hidden"
)

var linkShapes = map[LinkShape]string{
	LinkNormal: "--",
	LinkDotted: "-.-",
	LinkThick:  "==",
	LinkHidden: "~~~",
}

// ParseLinkShape converts a link shape name into a [LinkShape].
func ParseLinkShape(s string) (LinkShape, error) {
	shape := LinkShape(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := linkShapes[shape]; !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown link shape %q", s)
	}
	return shape, nil
}

func (s LinkShape) symbol() string {
	if sym, ok := linkShapes[s]; ok {
		return sym
	}
	return linkShapes[LinkNormal]
}

// LinkHead is the marker drawn at one end of a link.
type LinkHead string

const (
	HeadNone      LinkHead = "none"
	HeadArrow     LinkHead = "arrow"
	HeadLeftArrow LinkHead = "left-arrow"
	HeadBullet    LinkHead = "bullet"
	HeadCross     LinkHead = "cross"
)

var linkHeads = map[LinkHead]string{
	HeadNone:      "",
	HeadArrow:     ">",
	HeadLeftArrow: "<",
	HeadBullet:    "o",
	HeadCross:     "x",
}

// ParseLinkHead converts a head name into a [LinkHead].
func ParseLinkHead(s string) (LinkHead, error) {
	head := LinkHead(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := linkHeads[head]; !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown link head %q", s)
	}
	return head, nil
}

// symbol returns the head marker; the zero value draws nothing.
func (h LinkHead) symbol() string {
	return linkHeads[h]
}

// HrefType is the browsing context a node's click link opens in.
type HrefType string

const (
	HrefBlank  HrefType = "blank"
	HrefSelf   HrefType = "self"
	HrefParent HrefType = "parent"
	HrefTop    HrefType = "top"
)

var hrefTargets = map[HrefType]string{
	HrefBlank:  "_blank",
	HrefSelf:   "_self",
	HrefParent: "_parent",
	HrefTop:    "_top",
}

// ParseHrefType converts "blank", "self", "parent" or "top" into an [HrefType].
func ParseHrefType(s string) (HrefType, error) {
	t := HrefType(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "_"))
	if _, ok := hrefTargets[t]; !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown href type %q", s)
	}
	return t, nil
}

func (t HrefType) target() string {
	if target, ok := hrefTargets[t]; ok {
		return target
	}
	return hrefTargets[HrefBlank]
}
