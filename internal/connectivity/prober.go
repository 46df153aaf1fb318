package connectivity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
)

const (
	defaultProbeAddr     = "1.1.1.1:53"
	defaultProbeInterval = 5 * time.Second
	defaultDialTimeout   = 2 * time.Second
)

// ErrLinkDown is returned when a reconnect attempt leaves the link unreachable.
var ErrLinkDown = errors.New("link down")

type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

type commandRunner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}

// ProberConfig controls the background reachability probe.
type ProberConfig struct {
	Addr        string
	Interval    time.Duration
	DialTimeout time.Duration
}

// Prober implements Link by dialing a well-known address on an interval and
// rejoining Wi-Fi through nmcli.
type Prober struct {
	cfg    ProberConfig
	logger *slog.Logger
	clock  clockwork.Clock
	dial   dialFunc
	run    commandRunner

	connected atomic.Bool

	ticker   clockwork.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// NewProber constructs a prober with sane defaults.
func NewProber(cfg ProberConfig, logger *slog.Logger) *Prober {
	if cfg.Addr == "" {
		cfg.Addr = defaultProbeAddr
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultProbeInterval
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	dialer := &net.Dialer{}
	return &Prober{
		cfg:    cfg,
		logger: logger,
		clock:  clockwork.NewRealClock(),
		dial:   dialer.DialContext,
		run:    execRunner,
		done:   make(chan struct{}),
	}
}

// Start probes once, then keeps probing until the context is cancelled or Stop is called.
func (p *Prober) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.probeOnce(ctx)
	p.ticker = p.clock.NewTicker(p.cfg.Interval)

	go func() {
		logging.Info(p.logger, "link prober started", "addr", p.cfg.Addr, logging.FieldDurationMS, p.cfg.Interval.Milliseconds())
		for {
			select {
			case <-ctx.Done():
				p.ticker.Stop()
				logging.Info(p.logger, "link prober stopped")
				return
			case <-p.done:
				p.ticker.Stop()
				logging.Info(p.logger, "link prober stopped")
				return
			case <-p.ticker.Chan():
				p.probeOnce(ctx)
			}
		}
	}()
}

// Stop halts the probing loop.
func (p *Prober) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// IsConnected reports the result of the latest probe.
func (p *Prober) IsConnected() bool {
	return p.connected.Load()
}

// AttemptReconnect rejoins the configured network when an SSID is set, then re-probes.
func (p *Prober) AttemptReconnect(ctx context.Context, creds Credentials) error {
	if creds.SSID != "" {
		args := []string{"dev", "wifi", "connect", creds.SSID}
		if creds.Passphrase != "" {
			args = append(args, "password", creds.Passphrase)
		}
		if err := p.run(ctx, "nmcli", args...); err != nil {
			return fmt.Errorf("join %q: %w", creds.SSID, err)
		}
	}
	if !p.probeOnce(ctx) {
		return ErrLinkDown
	}
	return nil
}

func (p *Prober) probeOnce(ctx context.Context) bool {
	dialCtx, cancel := context.WithTimeout(ctx, p.cfg.DialTimeout)
	defer cancel()

	conn, err := p.dial(dialCtx, "tcp", p.cfg.Addr)
	up := err == nil
	if up {
		_ = conn.Close()
	}
	if prev := p.connected.Swap(up); prev != up {
		if up {
			logging.Info(p.logger, "link up", "addr", p.cfg.Addr)
		} else {
			logging.Warn(p.logger, "link down", "addr", p.cfg.Addr, "err", err)
		}
	}
	return up
}
