package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
	"github.com/preston-bernstein/matrix-scoreboard/internal/metrics"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
	"github.com/preston-bernstein/matrix-scoreboard/internal/snapshots"
)

// Outcome names what a refresh did to the list.
type Outcome string

const (
	OutcomeUpdated     Outcome = "updated"
	OutcomeFetchFailed Outcome = "fetch_failed"
	OutcomeCacheLoaded Outcome = "cache_loaded"
	OutcomeCacheMiss   Outcome = "cache_miss"
	OutcomeHeld        Outcome = "held"
	OutcomeDiscarded   Outcome = "discarded"
)

var errDiscarded = errors.New("refresh superseded by reset")

// Result reports one refresh.
type Result struct {
	Outcome Outcome
	Err     error
	Games   []domaingames.Game
	Stale   bool
}

// SnapshotStore holds the last good game list for one sport plus the cursor into it.
// Refreshes are serialized; readers never observe a half-replaced list.
type SnapshotStore struct {
	sport   domaingames.Sport
	fetcher providers.SportProvider
	cache   snapshots.Store
	saver   snapshots.Saver
	logger  *slog.Logger
	metrics *metrics.Recorder
	clock   clockwork.Clock

	refreshMu sync.Mutex

	mu          sync.RWMutex
	games       []domaingames.Game
	index       int
	stale       bool
	cacheLoaded bool
	epoch       uint64
	status      Status
}

// New constructs an empty store for sport. cache and saver may be nil.
func New(sport domaingames.Sport, fetcher providers.SportProvider, cache snapshots.Store, saver snapshots.Saver, logger *slog.Logger, recorder *metrics.Recorder) *SnapshotStore {
	return &SnapshotStore{
		sport:   sport,
		fetcher: fetcher,
		cache:   cache,
		saver:   saver,
		logger:  logger,
		metrics: recorder,
		clock:   clockwork.NewRealClock(),
	}
}

// Sport returns the sport this store serves.
func (s *SnapshotStore) Sport() domaingames.Sport {
	return s.sport
}

// Refresh brings the list up to date. It never fails: errors are reported in the
// Result while the previous list is kept and marked stale.
func (s *SnapshotStore) Refresh(ctx context.Context, connected bool) Result {
	epoch := s.currentEpoch()

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	start := s.clock.Now()
	var res Result
	if connected {
		res = s.refreshConnected(ctx, epoch, start)
	} else {
		res = s.refreshDisconnected(epoch)
	}
	s.metrics.RecordRefresh(string(s.sport), string(res.Outcome), s.clock.Since(start))

	args := []any{
		logging.FieldSport, s.sport,
		logging.FieldOutcome, res.Outcome,
		logging.FieldCount, len(res.Games),
		logging.FieldDurationMS, s.clock.Since(start).Milliseconds(),
	}
	if res.Err != nil {
		logging.Warn(s.logger, "store refresh degraded", append(args, "err", res.Err)...)
	} else {
		logging.Debug(s.logger, "store refreshed", args...)
	}
	return res
}

func (s *SnapshotStore) refreshConnected(ctx context.Context, epoch uint64, start time.Time) Result {
	games, err := s.fetch(ctx)
	if err == nil && len(games) == 0 {
		err = providers.Classify(s.sport, providers.ErrEmptyResult)
	}

	if err == nil {
		s.mu.Lock()
		if epoch != s.epoch {
			s.mu.Unlock()
			return s.discarded()
		}
		s.replaceLocked(games)
		s.cacheLoaded = false
		s.status.ConsecutiveFailures = 0
		s.status.LastError = ""
		s.status.LastAttempt = start
		s.status.LastSuccess = start
		res := s.resultLocked(OutcomeUpdated, nil)
		s.mu.Unlock()

		s.save(games)
		return res
	}

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return s.discarded()
	}
	s.stale = true
	s.status.ConsecutiveFailures++
	s.status.LastError = err.Error()
	s.status.LastAttempt = start
	needCache := len(s.games) == 0 && !s.cacheLoaded
	res := s.resultLocked(OutcomeFetchFailed, err)
	s.mu.Unlock()

	if !needCache {
		return res
	}
	cached := s.loadCache(epoch)
	if cached.Outcome == OutcomeDiscarded {
		return cached
	}
	// The fetch error outranks a cache miss.
	cached.Err = err
	return cached
}

func (s *SnapshotStore) refreshDisconnected(epoch uint64) Result {
	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return s.discarded()
	}
	s.stale = true
	if s.cacheLoaded || len(s.games) > 0 {
		// The in-memory list is at least as fresh as the cache.
		s.cacheLoaded = true
		res := s.resultLocked(OutcomeHeld, nil)
		s.mu.Unlock()
		return res
	}
	s.mu.Unlock()
	return s.loadCache(epoch)
}

// loadCache reads the cached list once; the caller holds refreshMu.
func (s *SnapshotStore) loadCache(epoch uint64) Result {
	var (
		games []domaingames.Game
		err   error
	)
	if s.cache == nil {
		err = snapshots.ErrNotFound
	} else {
		games, err = s.cache.LoadSport(s.sport)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return s.discardedLocked()
	}
	s.cacheLoaded = true
	s.stale = true
	if err != nil || len(games) == 0 {
		if err == nil {
			err = snapshots.ErrNotFound
		}
		return s.resultLocked(OutcomeCacheMiss, err)
	}
	s.replaceLocked(games)
	s.stale = true
	return s.resultLocked(OutcomeCacheLoaded, nil)
}

func (s *SnapshotStore) fetch(ctx context.Context) ([]domaingames.Game, error) {
	if s.fetcher == nil {
		return nil, &providers.FetchError{Kind: providers.KindUnreachable, Sport: s.sport, Err: providers.ErrProviderUnavailable}
	}
	games, err := s.fetcher.FetchSport(ctx, s.sport)
	if err != nil {
		return nil, providers.Classify(s.sport, err)
	}
	return games, nil
}

func (s *SnapshotStore) save(games []domaingames.Game) {
	if s.saver == nil {
		return
	}
	if err := s.saver.SaveSport(s.sport, games); err != nil {
		logging.Warn(s.logger, "cache save failed", logging.FieldSport, s.sport, "err", err)
	}
}

func (s *SnapshotStore) replaceLocked(games []domaingames.Game) {
	s.games = append([]domaingames.Game(nil), games...)
	s.stale = false
	if s.index >= len(s.games) {
		s.index = len(s.games) - 1
	}
	if s.index < 0 {
		s.index = 0
	}
}

func (s *SnapshotStore) resultLocked(outcome Outcome, err error) Result {
	return Result{
		Outcome: outcome,
		Err:     err,
		Games:   append([]domaingames.Game(nil), s.games...),
		Stale:   s.stale,
	}
}

func (s *SnapshotStore) discarded() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.discardedLocked()
}

func (s *SnapshotStore) discardedLocked() Result {
	return Result{
		Outcome: OutcomeDiscarded,
		Err:     errDiscarded,
		Games:   append([]domaingames.Game(nil), s.games...),
		Stale:   s.stale,
	}
}

func (s *SnapshotStore) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Reset clears the list and cursor and invalidates any refresh already in flight.
func (s *SnapshotStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.games = nil
	s.index = 0
	s.stale = false
	s.cacheLoaded = false
}

// Rotate moves the cursor by delta, wrapping in both directions, and returns the new index.
func (s *SnapshotStore) Rotate(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.games)
	if n == 0 {
		s.index = 0
		return 0
	}
	s.index = ((s.index+delta)%n + n) % n
	return s.index
}

// Games returns a copy of the current list.
func (s *SnapshotStore) Games() []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domaingames.Game(nil), s.games...)
}

// Len returns the number of games held.
func (s *SnapshotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Index returns the cursor.
func (s *SnapshotStore) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// SetIndex moves the cursor to i, wrapping out-of-range values.
func (s *SnapshotStore) SetIndex(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.games)
	if n == 0 {
		s.index = 0
		return 0
	}
	s.index = (i%n + n) % n
	return s.index
}

// Game returns the game at i. ok is false when i is out of range.
func (s *SnapshotStore) Game(i int) (domaingames.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.games) {
		return domaingames.Game{}, false
	}
	return s.games[i], true
}

// Window returns up to n games starting at the cursor, wrapping around the list.
func (s *SnapshotStore) Window(n int) []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.games)
	if n > total {
		n = total
	}
	out := make([]domaingames.Game, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, s.games[(s.index+k)%total])
	}
	return out
}

// Stale reports whether the list may be out of date.
func (s *SnapshotStore) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// Status returns a snapshot of the sport's recent fetch health.
func (s *SnapshotStore) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
