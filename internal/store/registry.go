package store

import (
	"log/slog"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/metrics"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
	"github.com/preston-bernstein/matrix-scoreboard/internal/snapshots"
)

// Registry owns one SnapshotStore per sport.
type Registry struct {
	stores map[domaingames.Sport]*SnapshotStore
}

// NewRegistry builds a store for every known sport sharing the same collaborators.
func NewRegistry(fetcher providers.SportProvider, cache snapshots.Store, saver snapshots.Saver, logger *slog.Logger, recorder *metrics.Recorder) *Registry {
	r := &Registry{stores: make(map[domaingames.Sport]*SnapshotStore, len(domaingames.Sports))}
	for _, sport := range domaingames.Sports {
		r.stores[sport] = New(sport, fetcher, cache, saver, logger, recorder)
	}
	return r
}

// For returns the store for sport, or nil for an unknown sport.
func (r *Registry) For(sport domaingames.Sport) *SnapshotStore {
	if r == nil {
		return nil
	}
	return r.stores[sport]
}

// Statuses reports fetch health per sport.
func (r *Registry) Statuses() map[domaingames.Sport]Status {
	out := make(map[domaingames.Sport]Status, len(r.stores))
	for sport, s := range r.stores {
		out[sport] = s.Status()
	}
	return out
}
