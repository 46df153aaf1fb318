package buttons

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
)

// DefaultDeadTime is the minimum spacing between two accepted presses of a button.
const DefaultDeadTime = 400 * time.Millisecond

type buttonState struct {
	pressed  bool
	lastEdge time.Time
}

// Debouncer turns raw levels into press edges, ignoring presses that arrive within
// the dead time of the previous accepted one.
type Debouncer struct {
	source   LevelReader
	deadTime time.Duration
	clock    clockwork.Clock
	logger   *slog.Logger

	mu     sync.Mutex
	states map[Button]*buttonState
}

// NewDebouncer wraps source. A non-positive deadTime uses DefaultDeadTime.
func NewDebouncer(source LevelReader, deadTime time.Duration, clock clockwork.Clock, logger *slog.Logger) *Debouncer {
	if deadTime <= 0 {
		deadTime = DefaultDeadTime
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Debouncer{
		source:   source,
		deadTime: deadTime,
		clock:    clock,
		logger:   logger,
		states:   make(map[Button]*buttonState, len(All)),
	}
}

// ReadButtonEdge reports whether b went from released to pressed since the last call.
func (d *Debouncer) ReadButtonEdge(b Button) bool {
	pressed, err := d.source.Pressed(b)
	if err != nil {
		logging.Debug(d.logger, "button read failed", "button", b.String(), "err", err)
		pressed = false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	st, ok := d.states[b]
	if !ok {
		st = &buttonState{}
		d.states[b] = st
	}
	wasPressed := st.pressed
	st.pressed = pressed
	if !pressed || wasPressed {
		return false
	}
	now := d.clock.Now()
	if !st.lastEdge.IsZero() && now.Sub(st.lastEdge) < d.deadTime {
		return false
	}
	st.lastEdge = now
	return true
}
