package store

import (
	"context"
	"errors"
	"testing"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/metrics"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
	"github.com/preston-bernstein/matrix-scoreboard/internal/snapshots"
	"github.com/preston-bernstein/matrix-scoreboard/internal/teststubs"
	"github.com/preston-bernstein/matrix-scoreboard/internal/testutil"
)

func timeoutErr() error {
	return &providers.FetchError{Kind: providers.KindTimeout, Sport: domaingames.SportMLB, Err: context.DeadlineExceeded}
}

func TestRefreshUpdatesListAndSavesCache(t *testing.T) {
	games := testutil.SampleGames(domaingames.SportNBA, 2)
	saver := &teststubs.StubSnapshotWriter{}
	rec := metrics.NewRecorder()
	s := New(domaingames.SportNBA, testutil.GoodProvider{Games: games}, nil, saver, nil, rec)

	res := s.Refresh(context.Background(), true)
	if res.Outcome != OutcomeUpdated || res.Err != nil || res.Stale {
		t.Fatalf("unexpected result %+v", res)
	}
	if s.Len() != 2 || s.Stale() {
		t.Fatalf("expected 2 fresh games, got %d stale=%v", s.Len(), s.Stale())
	}
	if saved, ok := saver.Saved(domaingames.SportNBA); !ok || len(saved) != 2 {
		t.Fatalf("expected cache save, got %v", saved)
	}
	if !s.Status().IsReady() {
		t.Fatalf("expected ready status after success")
	}
	if rec.RefreshOutcomes("nba", "updated") != 1 {
		t.Fatalf("expected refresh outcome recorded")
	}
}

func TestRefreshKeepsGamesAcrossTimeouts(t *testing.T) {
	provider := &testutil.ScriptedProvider{Responses: []testutil.Response{
		{Games: testutil.SampleGames(domaingames.SportMLB, 3)},
		{Err: timeoutErr()},
		{Err: timeoutErr()},
	}}
	s := New(domaingames.SportMLB, provider, nil, nil, nil, nil)

	if res := s.Refresh(context.Background(), true); res.Outcome != OutcomeUpdated {
		t.Fatalf("expected initial update, got %+v", res)
	}
	for i := 0; i < 2; i++ {
		res := s.Refresh(context.Background(), true)
		if res.Outcome != OutcomeFetchFailed {
			t.Fatalf("expected fetch failure, got %s", res.Outcome)
		}
		if providers.KindOf(res.Err) != providers.KindTimeout {
			t.Fatalf("expected timeout kind, got %v", res.Err)
		}
		if len(res.Games) != 3 || !res.Stale {
			t.Fatalf("expected 3 stale games, got %d stale=%v", len(res.Games), res.Stale)
		}
	}
	if s.Len() != 3 || !s.Stale() {
		t.Fatalf("expected store to keep 3 stale games")
	}
	if st := s.Status(); st.ConsecutiveFailures != 2 || st.LastError == "" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestRefreshKeepsCachedGamesAcrossTimeouts(t *testing.T) {
	cache := &teststubs.StubSnapshotStore{Games: map[domaingames.Sport][]domaingames.Game{
		domaingames.SportMLB: testutil.SampleGames(domaingames.SportMLB, 3),
	}}
	provider := &testutil.ScriptedProvider{Responses: []testutil.Response{
		{Err: timeoutErr()},
		{Err: timeoutErr()},
		{Err: timeoutErr()},
	}}
	s := New(domaingames.SportMLB, provider, cache, nil, nil, nil)

	first := s.Refresh(context.Background(), true)
	if first.Outcome != OutcomeCacheLoaded || len(first.Games) != 3 || !first.Stale {
		t.Fatalf("expected 3 stale games from the cache, got %+v", first)
	}
	if providers.KindOf(first.Err) != providers.KindTimeout {
		t.Fatalf("expected the fetch timeout to be reported, got %v", first.Err)
	}
	for i := 0; i < 2; i++ {
		res := s.Refresh(context.Background(), true)
		if res.Outcome != OutcomeFetchFailed || providers.KindOf(res.Err) != providers.KindTimeout {
			t.Fatalf("expected timeout fetch failure, got %s %v", res.Outcome, res.Err)
		}
		if len(res.Games) != 3 || !res.Stale {
			t.Fatalf("expected 3 stale games, got %d stale=%v", len(res.Games), res.Stale)
		}
	}
	if cache.LoadCount() != 1 {
		t.Fatalf("expected the cache read once, got %d", cache.LoadCount())
	}
	if provider.Calls() != 3 {
		t.Fatalf("expected 3 fetches, got %d", provider.Calls())
	}
	if st := s.Status(); st.ConsecutiveFailures != 3 {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestRefreshNeverShrinksToZero(t *testing.T) {
	failures := []error{
		timeoutErr(),
		&providers.FetchError{Kind: providers.KindMalformedResponse, Err: errors.New("bad json")},
		&providers.FetchError{Kind: providers.KindUnreachable, Err: errors.New("no route")},
	}
	responses := []testutil.Response{{Games: testutil.SampleGames(domaingames.SportNFL, 4)}}
	for _, err := range failures {
		responses = append(responses, testutil.Response{Err: err})
	}
	responses = append(responses, testutil.Response{Games: nil})
	provider := &testutil.ScriptedProvider{Responses: responses}
	s := New(domaingames.SportNFL, provider, nil, nil, nil, nil)

	for i := 0; i < len(responses)+3; i++ {
		s.Refresh(context.Background(), true)
		if s.Len() != 4 {
			t.Fatalf("refresh %d shrank list to %d", i, s.Len())
		}
	}
	if provider.Calls() != len(responses)+3 {
		t.Fatalf("expected every refresh to fetch, got %d calls", provider.Calls())
	}
}

func TestRefreshEmptyResultIsFailure(t *testing.T) {
	s := New(domaingames.SportNBA, testutil.EmptyProvider{}, nil, nil, nil, nil)
	res := s.Refresh(context.Background(), true)
	if !errors.Is(res.Err, providers.ErrEmptyResult) {
		t.Fatalf("expected empty result error, got %v", res.Err)
	}
	if !res.Stale {
		t.Fatalf("expected stale list")
	}
}

func TestRefreshFirstBootFallsBackToCacheOnce(t *testing.T) {
	cache := &teststubs.StubSnapshotStore{Games: map[domaingames.Sport][]domaingames.Game{
		domaingames.SportNBA: testutil.SampleGames(domaingames.SportNBA, 2),
	}}
	s := New(domaingames.SportNBA, testutil.ErrProvider{Err: timeoutErr()}, cache, nil, nil, nil)

	res := s.Refresh(context.Background(), true)
	if res.Outcome != OutcomeCacheLoaded || len(res.Games) != 2 || !res.Stale {
		t.Fatalf("expected cached games, got %+v", res)
	}
	if res.Err == nil {
		t.Fatalf("expected fetch error to be reported")
	}
	res = s.Refresh(context.Background(), true)
	if res.Outcome != OutcomeFetchFailed || cache.LoadCount() != 1 {
		t.Fatalf("expected cache consulted once, got %s loads=%d", res.Outcome, cache.LoadCount())
	}
}

func TestRefreshDisconnectedLoadsCacheOnceThenHolds(t *testing.T) {
	cache := &teststubs.StubSnapshotStore{Games: map[domaingames.Sport][]domaingames.Game{
		domaingames.SportMLB: testutil.SampleGames(domaingames.SportMLB, 3),
	}}
	provider := &teststubs.StubProvider{}
	s := New(domaingames.SportMLB, provider, cache, nil, nil, nil)

	res := s.Refresh(context.Background(), false)
	if res.Outcome != OutcomeCacheLoaded || len(res.Games) != 3 || !res.Stale {
		t.Fatalf("expected cache load, got %+v", res)
	}
	res = s.Refresh(context.Background(), false)
	if res.Outcome != OutcomeHeld || len(res.Games) != 3 || !res.Stale {
		t.Fatalf("expected held list, got %+v", res)
	}
	if cache.LoadCount() != 1 || provider.Calls.Load() != 0 {
		t.Fatalf("expected one cache load and no fetch, got loads=%d fetches=%d", cache.LoadCount(), provider.Calls.Load())
	}
}

func TestRefreshDisconnectedCacheMiss(t *testing.T) {
	s := New(domaingames.SportNCAAB, nil, &teststubs.StubSnapshotStore{LoadErr: snapshots.ErrNotFound}, nil, nil, nil)
	res := s.Refresh(context.Background(), false)
	if res.Outcome != OutcomeCacheMiss || !errors.Is(res.Err, snapshots.ErrNotFound) {
		t.Fatalf("expected cache miss, got %+v", res)
	}
	if s.Len() != 0 || !s.Stale() {
		t.Fatalf("expected empty stale list")
	}
	if res := s.Refresh(context.Background(), false); res.Outcome != OutcomeHeld {
		t.Fatalf("expected held after miss, got %s", res.Outcome)
	}
}

func TestRefreshSaveFailureIsNotFatal(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	saver := &teststubs.StubSnapshotWriter{Err: errors.New("disk full")}
	s := New(domaingames.SportNBA, testutil.GoodProvider{Games: testutil.SampleGames(domaingames.SportNBA, 1)}, nil, saver, logger, nil)

	if res := s.Refresh(context.Background(), true); res.Outcome != OutcomeUpdated || res.Err != nil {
		t.Fatalf("expected update despite save failure, got %+v", res)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected save failure to be logged")
	}
}

func TestResetDiscardsInFlightRefresh(t *testing.T) {
	provider := &teststubs.StubProvider{
		Games:  testutil.SampleGames(domaingames.SportNBA, 2),
		Block:  make(chan struct{}),
		Notify: make(chan struct{}),
	}
	s := New(domaingames.SportNBA, provider, nil, nil, nil, nil)

	done := make(chan Result, 1)
	go func() { done <- s.Refresh(context.Background(), true) }()
	<-provider.Notify
	s.Reset()
	close(provider.Block)

	res := <-done
	if res.Outcome != OutcomeDiscarded {
		t.Fatalf("expected discarded refresh, got %s", res.Outcome)
	}
	if s.Len() != 0 {
		t.Fatalf("expected reset list to stay empty, got %d", s.Len())
	}
}

func TestRotateStaysInRange(t *testing.T) {
	s := New(domaingames.SportNBA, testutil.GoodProvider{Games: testutil.SampleGames(domaingames.SportNBA, 3)}, nil, nil, nil, nil)
	if got := s.Rotate(5); got != 0 {
		t.Fatalf("expected 0 on empty list, got %d", got)
	}
	s.Refresh(context.Background(), true)

	cases := []struct {
		delta int
		want  int
	}{
		{1, 1}, {1, 2}, {1, 0}, {-1, 2}, {-4, 1}, {300, 1}, {-301, 0},
	}
	for _, tc := range cases {
		if got := s.Rotate(tc.delta); got != tc.want {
			t.Fatalf("Rotate(%d) = %d, want %d", tc.delta, got, tc.want)
		}
	}
	for delta := -50; delta <= 50; delta++ {
		if got := s.Rotate(delta); got < 0 || got >= 3 {
			t.Fatalf("Rotate(%d) out of range: %d", delta, got)
		}
	}
}

func TestWindowWrapsFromCursor(t *testing.T) {
	games := testutil.SampleGames(domaingames.SportNBA, 4)
	s := New(domaingames.SportNBA, testutil.GoodProvider{Games: games}, nil, nil, nil, nil)
	if len(s.Window(3)) != 0 {
		t.Fatalf("expected empty window before refresh")
	}
	s.Refresh(context.Background(), true)
	s.SetIndex(3)

	w := s.Window(3)
	if len(w) != 3 || w[0].ID != games[3].ID || w[1].ID != games[0].ID || w[2].ID != games[1].ID {
		t.Fatalf("unexpected window %+v", w)
	}
	if got := s.SetIndex(-1); got != 3 {
		t.Fatalf("expected SetIndex(-1) to wrap to 3, got %d", got)
	}
	if _, ok := s.Game(4); ok {
		t.Fatalf("expected out-of-range game lookup to fail")
	}
	if g, ok := s.Game(0); !ok || g.ID != games[0].ID {
		t.Fatalf("expected first game, got %+v", g)
	}
}

func TestRefreshClampsIndexWhenListShrinks(t *testing.T) {
	provider := &testutil.ScriptedProvider{Responses: []testutil.Response{
		{Games: testutil.SampleGames(domaingames.SportNBA, 5)},
		{Games: testutil.SampleGames(domaingames.SportNBA, 2)},
	}}
	s := New(domaingames.SportNBA, provider, nil, nil, nil, nil)
	s.Refresh(context.Background(), true)
	s.SetIndex(4)
	s.Refresh(context.Background(), true)
	if s.Index() != 1 {
		t.Fatalf("expected index clamped to 1, got %d", s.Index())
	}
}

func TestRegistryBuildsStorePerSport(t *testing.T) {
	r := NewRegistry(testutil.EmptyProvider{}, nil, nil, nil, nil)
	for _, sport := range domaingames.Sports {
		if s := r.For(sport); s == nil || s.Sport() != sport {
			t.Fatalf("missing store for %s", sport)
		}
	}
	if r.For(domaingames.Sport("nhl")) != nil {
		t.Fatalf("expected nil store for unknown sport")
	}
	if len(r.Statuses()) != len(domaingames.Sports) {
		t.Fatalf("expected status per sport")
	}
	var nilRegistry *Registry
	if nilRegistry.For(domaingames.SportNBA) != nil {
		t.Fatalf("expected nil registry lookup to be nil")
	}
}
