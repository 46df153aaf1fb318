package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
	"github.com/preston-bernstein/matrix-scoreboard/internal/metrics"
	"github.com/preston-bernstein/matrix-scoreboard/internal/poller"
)

const defaultAttemptTimeout = 20 * time.Second

// Credentials identify the network to rejoin.
type Credentials struct {
	SSID       string
	Passphrase string
}

// Link is the network interface the display depends on.
type Link interface {
	IsConnected() bool
	AttemptReconnect(ctx context.Context, creds Credentials) error
}

// State is what the monitor observed on a tick.
type State struct {
	Connected    bool
	Reconnecting bool
}

// Monitor watches the link and schedules reconnect attempts on a cadence.
type Monitor struct {
	link           Link
	creds          Credentials
	cadence        poller.Cadence
	scheduler      *poller.Scheduler
	logger         *slog.Logger
	metrics        *metrics.Recorder
	attemptTimeout time.Duration
	clock          clockwork.Clock

	inflight atomic.Bool
	wg       sync.WaitGroup
}

// NewMonitor constructs a monitor. A zero attemptTimeout uses the default.
func NewMonitor(link Link, creds Credentials, cadence poller.Cadence, logger *slog.Logger, recorder *metrics.Recorder, attemptTimeout time.Duration) *Monitor {
	return NewMonitorWithClock(link, creds, cadence, logger, recorder, attemptTimeout, clockwork.NewRealClock())
}

// NewMonitorWithClock constructs a monitor that times attempts with clock.
func NewMonitorWithClock(link Link, creds Credentials, cadence poller.Cadence, logger *slog.Logger, recorder *metrics.Recorder, attemptTimeout time.Duration, clock clockwork.Clock) *Monitor {
	if attemptTimeout <= 0 {
		attemptTimeout = defaultAttemptTimeout
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Monitor{
		link:           link,
		creds:          creds,
		cadence:        cadence,
		scheduler:      poller.NewScheduler(),
		logger:         logger,
		metrics:        recorder,
		attemptTimeout: attemptTimeout,
		clock:          clock,
	}
}

// Tick samples the link at currentSecond. When disconnected and the second is a
// reconnect mark, one background attempt starts unless another is still running.
func (m *Monitor) Tick(ctx context.Context, currentSecond int) State {
	due := m.scheduler.IsDue(currentSecond, m.cadence)
	if m.link == nil {
		return State{}
	}
	if m.link.IsConnected() {
		return State{Connected: true, Reconnecting: m.inflight.Load()}
	}
	if due && m.inflight.CompareAndSwap(false, true) {
		m.wg.Add(1)
		go m.attempt(ctx, currentSecond)
	}
	return State{Connected: false, Reconnecting: m.inflight.Load()}
}

func (m *Monitor) attempt(ctx context.Context, second int) {
	defer m.wg.Done()
	defer m.inflight.Store(false)

	attemptCtx, cancel := context.WithTimeout(ctx, m.attemptTimeout)
	defer cancel()

	start := m.clock.Now()
	err := m.link.AttemptReconnect(attemptCtx, m.creds)
	m.metrics.RecordReconnectAttempt(err)
	if err != nil {
		logging.Warn(m.logger, "reconnect attempt failed",
			logging.FieldSecond, second,
			logging.FieldDurationMS, m.clock.Since(start).Milliseconds(),
			"err", err,
		)
		return
	}
	logging.Info(m.logger, "reconnect attempt succeeded",
		logging.FieldSecond, second,
		logging.FieldDurationMS, m.clock.Since(start).Milliseconds(),
	)
}

// Wait blocks until any in-flight attempt finishes.
func (m *Monitor) Wait() {
	m.wg.Wait()
}
