package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// StubProvider is a test double for providers.SportProvider.
type StubProvider struct {
	Games  []domaingames.Game
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
	// Block, when set, holds every fetch until it is closed or ctx ends.
	Block chan struct{}
}

// FetchSport returns configured games and error while tracking calls.
func (s *StubProvider) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	_ = sport
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Block != nil {
		select {
		case <-s.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.Games, s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	mu      sync.Mutex
	Games   map[domaingames.Sport][]domaingames.Game
	LoadErr error
	Loads   int
}

// LoadSport returns games for sport if present in the Games map.
func (s *StubSnapshotStore) LoadSport(sport domaingames.Sport) ([]domaingames.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Loads++
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	games, ok := s.Games[sport]
	if !ok {
		return nil, errors.New("snapshot not found")
	}
	return games, nil
}

// LoadCount reports how many loads were attempted.
func (s *StubSnapshotStore) LoadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Loads
}

// StubSnapshotWriter is a test double for snapshots.Saver.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written map[domaingames.Sport][]domaingames.Game
	Err     error
}

// SaveSport records the games for verification in tests.
func (w *StubSnapshotWriter) SaveSport(sport domaingames.Sport, games []domaingames.Game) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[domaingames.Sport][]domaingames.Game)
	}
	w.Written[sport] = append([]domaingames.Game(nil), games...)
	return nil
}

// Saved returns the last games saved for sport.
func (w *StubSnapshotWriter) Saved(sport domaingames.Sport) ([]domaingames.Game, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	games, ok := w.Written[sport]
	return games, ok
}
