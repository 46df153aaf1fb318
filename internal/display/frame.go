package display

import (
	"errors"
	"strings"

	"github.com/preston-bernstein/matrix-scoreboard/internal/colors"
)

// View names the screen a frame belongs to.
type View string

const (
	ViewMenu   View = "menu"
	ViewList   View = "list"
	ViewDetail View = "detail"
	ViewClock  View = "clock"
)

// ListRows is the number of game rows the list view shows at once.
const ListRows = 3

// Indicators are the status icons drawn in the corner of every view.
type Indicators struct {
	Offline  bool
	Fetching bool
	Stale    bool
}

// Line is one row of colored text.
type Line struct {
	Text  string
	Color colors.RGB
}

// Frame is a complete screen to draw.
type Frame struct {
	View       View
	Lines      []Line
	Indicators Indicators
}

// ErrEmptyFrame is returned when a frame has nothing to draw.
var ErrEmptyFrame = errors.New("frame has no lines")

// Validate reports whether the frame can be drawn.
func (f Frame) Validate() error {
	if f.View == "" {
		return errors.New("frame has no view")
	}
	if len(f.Lines) == 0 {
		return ErrEmptyFrame
	}
	return nil
}

// Text joins the frame's lines, one per row.
func (f Frame) Text() string {
	parts := make([]string, 0, len(f.Lines))
	for _, l := range f.Lines {
		parts = append(parts, l.Text)
	}
	return strings.Join(parts, " | ")
}

// Badges renders the indicators as short tags.
func (i Indicators) Badges() []string {
	var out []string
	if i.Offline {
		out = append(out, "offline")
	}
	if i.Fetching {
		out = append(out, "fetching")
	}
	if i.Stale {
		out = append(out, "stale")
	}
	return out
}
