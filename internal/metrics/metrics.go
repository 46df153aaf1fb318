package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about fetches, refreshes and the link.
// All methods are safe on a nil Recorder.
type Recorder struct {
	mu                sync.Mutex
	fetches           map[string]*fetchStats
	refreshes         map[string]map[string]int
	reconnectAttempts int
	reconnectFailures int
	viewResets        int
	otel              *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetches:   make(map[string]*fetchStats),
		refreshes: make(map[string]map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt counts one upstream fetch for a sport and stores the last latency.
func (r *Recorder) RecordProviderAttempt(provider, sport string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.fetches[sport]
	if !ok {
		stats = &fetchStats{}
		r.fetches[sport] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, sport, duration, err)
	}
}

// RecordRefresh counts a snapshot store refresh by outcome.
func (r *Recorder) RecordRefresh(sport, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	bySport, ok := r.refreshes[sport]
	if !ok {
		bySport = make(map[string]int)
		r.refreshes[sport] = bySport
	}
	bySport[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(sport, outcome, duration)
	}
}

// RecordReconnectAttempt counts a link reconnect attempt and whether it failed.
func (r *Recorder) RecordReconnectAttempt(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.reconnectAttempts++
	if err != nil {
		r.reconnectFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReconnect(err)
	}
}

// RecordViewReset counts forced returns to the menu.
func (r *Recorder) RecordViewReset(view string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.viewResets++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordViewReset(view)
	}
}

// ProviderCalls returns the total fetch attempts recorded for a sport.
func (r *Recorder) ProviderCalls(sport string) int {
	return r.Snapshot(sport).Calls
}

// ProviderErrors returns the failed fetch attempts recorded for a sport.
func (r *Recorder) ProviderErrors(sport string) int {
	return r.Snapshot(sport).Errors
}

// LastCallLatency returns the last recorded fetch latency for a sport.
func (r *Recorder) LastCallLatency(sport string) time.Duration {
	return r.Snapshot(sport).LastCallLatency
}

// RefreshOutcomes returns how often a sport's refresh ended with outcome.
func (r *Recorder) RefreshOutcomes(sport, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes[sport][outcome]
}

// ReconnectAttempts returns the number of reconnect attempts and how many failed.
func (r *Recorder) ReconnectAttempts() (attempts, failures int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reconnectAttempts, r.reconnectFailures
}

// ViewResets returns the number of forced returns to the menu.
func (r *Recorder) ViewResets() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewResets
}

// Snapshot is a copy of the fetch stats for a sport.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(sport string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.fetches[sport]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}
