package buttons

import (
	"fmt"
	"strings"
)

// Button names one of the four front-panel inputs.
type Button int

const (
	Left Button = iota
	Right
	Select
	Back
)

// All lists every button in polling order.
var All = []Button{Left, Right, Select, Back}

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Select:
		return "select"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseButton resolves a case-insensitive button name.
func ParseButton(raw string) (Button, error) {
	for _, b := range All {
		if strings.EqualFold(strings.TrimSpace(raw), b.String()) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", raw)
}

// EdgeReader reports a press edge: true once per physical press.
type EdgeReader interface {
	ReadButtonEdge(b Button) bool
}

// LevelReader reports the raw pressed level of a button.
type LevelReader interface {
	Pressed(b Button) (bool, error)
}

// Noop is an EdgeReader for boards without buttons.
type Noop struct{}

// ReadButtonEdge never reports a press.
func (Noop) ReadButtonEdge(Button) bool { return false }
