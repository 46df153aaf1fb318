package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Reading is the wall-clock time of day.
type Reading struct {
	Hour   int
	Minute int
	Second int
}

// WallClock reads the time of day in a fixed location.
type WallClock struct {
	clock clockwork.Clock
	loc   *time.Location
}

// New returns a wall clock backed by clock in loc. Nil arguments use the real clock and UTC.
func New(clock clockwork.Clock, loc *time.Location) *WallClock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &WallClock{clock: clock, loc: loc}
}

// Read returns the current hour, minute and second.
func (w *WallClock) Read() Reading {
	now := w.clock.Now().In(w.loc)
	return Reading{Hour: now.Hour(), Minute: now.Minute(), Second: now.Second()}
}

// Clock exposes the underlying clock for timers and waits.
func (w *WallClock) Clock() clockwork.Clock {
	return w.clock
}
