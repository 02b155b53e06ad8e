package diagram

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Direction is a layout direction code.
type Direction string

const (
	LeftToRight Direction = "LR"
	RightToLeft Direction = "RL"
	TopToBottom Direction = "TB"
	BottomToTop Direction = "BT"
)

var directionAliases = map[string]Direction{
	"lr":            LeftToRight,
	"rl":            RightToLeft,
	"tb":            TopToBottom,
	"td":            TopToBottom,
	"bt":            BottomToTop,
	"left-to-right": LeftToRight,
	"right-to-left": RightToLeft,
	"top-to-bottom": TopToBottom,
	"bottom-to-top": BottomToTop,
}

// ParseDirection accepts a direction code ("LR", "TB", ...) or its long form
// ("left-to-right"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown direction %q", s)
}
