package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/matrix-scoreboard/internal/buttons"
	"github.com/preston-bernstein/matrix-scoreboard/internal/clock"
	"github.com/preston-bernstein/matrix-scoreboard/internal/connectivity"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
)

const (
	defaultPollInterval  = 50 * time.Millisecond
	clockRedraw          = time.Second
	maxConsecutiveFaults = 5
)

// ErrRepeatedFaults is returned by Run when every recent step has faulted.
var ErrRepeatedFaults = errors.New("display loop faulted repeatedly")

// LinkTicker samples connectivity once per loop iteration.
type LinkTicker interface {
	Tick(ctx context.Context, currentSecond int) connectivity.State
}

// Runner is the single loop that polls inputs and drives the machine.
type Runner struct {
	machine  *Machine
	buttons  buttons.EdgeReader
	wall     *clock.WallClock
	link     LinkTicker
	interval time.Duration
	logger   *slog.Logger

	pending []buttons.Button
	faults  int
}

// NewRunner wires the loop. A nil link is treated as always connected.
func NewRunner(machine *Machine, edges buttons.EdgeReader, wall *clock.WallClock, link LinkTicker, interval time.Duration, logger *slog.Logger) *Runner {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if edges == nil {
		edges = buttons.Noop{}
	}
	if wall == nil {
		wall = clock.New(nil, nil)
	}
	return &Runner{
		machine:  machine,
		buttons:  edges,
		wall:     wall,
		link:     link,
		interval: interval,
		logger:   logger,
	}
}

// Run loops until ctx is cancelled. The clock view redraws on each wall-clock
// second; any button edge ends that wait early. A step that panics resets the
// display to the menu, and Run gives up only after repeated consecutive faults.
func (r *Runner) Run(ctx context.Context) error {
	logging.Info(r.logger, "runner started", logging.FieldView, string(r.machine.State().View()))
	defer r.machine.Close()

	for {
		if ctx.Err() != nil {
			logging.Info(r.logger, "runner stopped")
			return nil
		}
		if err := r.Once(ctx); err != nil {
			r.faults++
			if r.faults >= maxConsecutiveFaults {
				logging.Error(r.logger, "runner giving up", err, logging.FieldCount, r.faults)
				return fmt.Errorf("%w: %v", ErrRepeatedFaults, err)
			}
		} else {
			r.faults = 0
		}

		wait := r.interval
		if r.machine.State().Kind == KindClock {
			wait = r.untilNextSecond()
		}
		r.pending = r.waitForEdges(ctx, wait)
	}
}

// Once performs a single loop iteration. A panic is recovered, the machine is
// reset to the menu and the fault is returned.
func (r *Runner) Once(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("display step panicked: %v", rec)
			r.pending = nil
			r.machine.ResetToMenu(err)
		}
	}()

	reading := r.wall.Read()
	link := connectivity.State{Connected: true}
	if r.link != nil {
		link = r.link.Tick(ctx, reading.Second)
	}
	pressed := append(r.pending, r.readEdges()...)
	r.pending = nil
	r.machine.Step(ctx, Input{Reading: reading, Pressed: pressed, Link: link})
	return nil
}

// untilNextSecond is the time left before the next wall-clock second starts.
func (r *Runner) untilNextSecond() time.Duration {
	now := r.wall.Clock().Now()
	return now.Truncate(clockRedraw).Add(clockRedraw).Sub(now)
}

func (r *Runner) readEdges() []buttons.Button {
	var pressed []buttons.Button
	for _, b := range buttons.All {
		if r.buttons.ReadButtonEdge(b) {
			pressed = append(pressed, b)
		}
	}
	return pressed
}

// waitForEdges sleeps up to d, polling buttons every interval, and returns early
// with any edges seen.
func (r *Runner) waitForEdges(ctx context.Context, d time.Duration) []buttons.Button {
	clk := r.wall.Clock()
	deadline := clk.Now().Add(d)
	for {
		step := r.interval
		if remaining := deadline.Sub(clk.Now()); remaining < step {
			step = remaining
		}
		if step <= 0 {
			return nil
		}
		if !sleep(ctx, clk, step) {
			return nil
		}
		if pressed := r.readEdges(); len(pressed) > 0 {
			return pressed
		}
	}
}

func sleep(ctx context.Context, clk clockwork.Clock, d time.Duration) bool {
	timer := clk.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}
