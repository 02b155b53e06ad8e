package sequence

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// ArrowType is the line and head style of a message.
type ArrowType string

const (
	SolidLine   ArrowType = "Solid-line"
	DottedLine  ArrowType = "Dotted-line"
	SolidArrow  ArrowType = "Solid-arrow"
	DottedArrow ArrowType = "Dotted-arrow"
	SolidCross  ArrowType = "Solid-cross"
	DottedCross ArrowType = "Dotted-cross"
	SolidAsync  ArrowType = "Solid-async"
	DottedAsync ArrowType = "Dotted-async"
)

var arrowSymbols = map[ArrowType]string{
	SolidLine:   "->",
	DottedLine:  "-->",
	SolidArrow:  "->>",
	DottedArrow: "-->>",
	SolidCross:  "-x",
	DottedCross: "--x",
	SolidAsync:  "-)",
	DottedAsync: "--)",
}

// ParseArrowType accepts an arrow name ("solid-arrow") or its symbol ("->>").
func ParseArrowType(s string) (ArrowType, error) {
	s = strings.TrimSpace(s)
	for t, sym := range arrowSymbols {
		if strings.EqualFold(string(t), s) || sym == s {
			return t, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown arrow type %q", s)
}

// Symbol returns the arrow as written in the script. Unknown types use the
// solid arrow.
func (t ArrowType) Symbol() string {
	if sym, ok := arrowSymbols[t]; ok {
		return sym
	}
	return arrowSymbols[SolidArrow]
}

// Link is a message from one lifeline to another.
type Link struct {
	Source     Lifeline
	Target     Lifeline
	Arrow      ArrowType
	Message    string
	Activate   bool
	Deactivate bool
}

// LinkOption configures a [Link] built by [NewLink].
type LinkOption func(*Link)

// Activate starts an activation bar on the target.
func Activate() LinkOption { return func(l *Link) { l.Activate = true } }

// Deactivate ends the activation bar of the target.
func Deactivate() LinkOption { return func(l *Link) { l.Deactivate = true } }

// NewLink creates a message.
func NewLink(source, target Lifeline, arrow ArrowType, message string, opts ...LinkOption) *Link {
	l := &Link{Source: source, Target: target, Arrow: arrow, Message: message}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Link) String() string {
	var b strings.Builder
	b.WriteString("\t" + l.Source.Identifier() + l.Arrow.Symbol() + l.Target.Identifier() + ": " + l.Message + "\n")
	if l.Activate {
		b.WriteString("activate " + l.Target.Identifier() + "\n")
	}
	if l.Deactivate {
		b.WriteString("deactivate " + l.Target.Identifier() + "\n")
	}
	return b.String()
}
