package connectivity

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func newTestProber(up *atomic.Bool) *Prober {
	p := NewProber(ProberConfig{Addr: "probe.test:53"}, nil)
	p.dial = func(ctx context.Context, network, addr string) (net.Conn, error) {
		if !up.Load() {
			return nil, errors.New("network unreachable")
		}
		client, server := net.Pipe()
		_ = server.Close()
		return client, nil
	}
	return p
}

func TestProberTracksReachability(t *testing.T) {
	var up atomic.Bool
	p := newTestProber(&up)
	if p.probeOnce(context.Background()) || p.IsConnected() {
		t.Fatalf("expected link down")
	}
	up.Store(true)
	if !p.probeOnce(context.Background()) || !p.IsConnected() {
		t.Fatalf("expected link up")
	}
}

func TestProberAttemptReconnectRunsNmcli(t *testing.T) {
	var up atomic.Bool
	p := newTestProber(&up)
	var got []string
	p.run = func(ctx context.Context, name string, args ...string) error {
		got = append([]string{name}, args...)
		up.Store(true)
		return nil
	}

	if err := p.AttemptReconnect(context.Background(), Credentials{SSID: "stadium", Passphrase: "pw"}); err != nil {
		t.Fatalf("expected reconnect success, got %v", err)
	}
	if strings.Join(got, " ") != "nmcli dev wifi connect stadium password pw" {
		t.Fatalf("unexpected command %v", got)
	}
	if !p.IsConnected() {
		t.Fatalf("expected link up after reconnect")
	}
}

func TestProberAttemptReconnectErrors(t *testing.T) {
	var up atomic.Bool
	p := newTestProber(&up)
	p.run = func(ctx context.Context, name string, args ...string) error {
		return errors.New("secrets required")
	}
	if err := p.AttemptReconnect(context.Background(), Credentials{SSID: "stadium"}); err == nil {
		t.Fatalf("expected join error")
	}

	p.run = func(ctx context.Context, name string, args ...string) error {
		t.Fatalf("no command expected without ssid")
		return nil
	}
	if err := p.AttemptReconnect(context.Background(), Credentials{}); !errors.Is(err, ErrLinkDown) {
		t.Fatalf("expected ErrLinkDown, got %v", err)
	}
}

func TestProberStartProbesOnTicker(t *testing.T) {
	var up atomic.Bool
	p := newTestProber(&up)
	clock := clockwork.NewFakeClock()
	p.clock = clock

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Start(ctx)
	if p.IsConnected() {
		t.Fatalf("expected initial probe to see link down")
	}

	up.Store(true)
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("ticker never registered: %v", err)
	}
	clock.Advance(defaultProbeInterval)

	deadline := time.Now().Add(time.Second)
	for !p.IsConnected() {
		if time.Now().After(deadline) {
			t.Fatalf("expected ticker probe to mark link up")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error %v", err)
	}
	_ = p.Stop(context.Background())
}

func TestNewProberDefaults(t *testing.T) {
	p := NewProber(ProberConfig{}, nil)
	if p.cfg.Addr != defaultProbeAddr || p.cfg.Interval != defaultProbeInterval || p.cfg.DialTimeout != defaultDialTimeout {
		t.Fatalf("unexpected defaults %+v", p.cfg)
	}
}
