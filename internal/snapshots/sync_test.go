package snapshots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
)

func TestSyncerWritesEverySportWhenCacheEmpty(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	var fetched []domaingames.Sport
	provider := providers.ProviderFunc(func(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
		fetched = append(fetched, sport)
		return simpleGames(sport, "g1"), nil
	})

	s := NewSyncer(provider, w, SyncConfig{Enabled: true, Interval: time.Nanosecond}, nil, nil)
	if got := s.Run(context.Background()); got != len(domaingames.Sports) {
		t.Fatalf("expected %d sports written, got %d", len(domaingames.Sports), got)
	}
	if len(fetched) != len(domaingames.Sports) || fetched[0] != domaingames.SportNFL {
		t.Fatalf("expected menu-order fetches, got %v", fetched)
	}
	for _, sport := range domaingames.Sports {
		requireSnapshotExists(t, w, sport)
	}
}

func TestSyncerSkipsFreshSportsAndFailures(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	w := NewWriterWithClock(dir, clock)
	saveSport(t, w, domaingames.SportNFL, simpleGames(domaingames.SportNFL, "fresh"))

	provider := providers.ProviderFunc(func(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
		switch sport {
		case domaingames.SportNFL:
			t.Errorf("fresh sport should not be fetched")
		case domaingames.SportMLB:
			return nil, errors.New("boom")
		case domaingames.SportNBA:
			return nil, nil
		}
		return simpleGames(sport, "g1"), nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s := NewSyncer(provider, w, SyncConfig{Enabled: true, Interval: time.Second, MaxAge: time.Hour}, nil, clock)
	done := make(chan int, 1)
	go func() { done <- s.Run(ctx) }()

	// mlb, nba and ncaab are due: two pauses between them.
	for i := 0; i < 2; i++ {
		if err := clock.BlockUntilContext(ctx, 1); err != nil {
			t.Fatalf("syncer never waited: %v", err)
		}
		clock.Advance(time.Second)
	}
	if got := <-done; got != 1 {
		t.Fatalf("expected only ncaab written, got %d", got)
	}
}

func TestSyncerDisabledOrUnconfigured(t *testing.T) {
	w := NewWriter(t.TempDir())
	if got := NewSyncer(nil, w, SyncConfig{Enabled: true}, nil, nil).Run(context.Background()); got != 0 {
		t.Fatalf("expected no-op without provider")
	}
	provider := providers.ProviderFunc(func(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
		t.Fatalf("disabled syncer must not fetch")
		return nil, nil
	})
	if got := NewSyncer(provider, w, SyncConfig{}, nil, nil).Run(context.Background()); got != 0 {
		t.Fatalf("expected no-op when disabled")
	}
	var nilSyncer *Syncer
	if nilSyncer.Run(context.Background()) != 0 {
		t.Fatalf("expected nil syncer no-op")
	}
}

func TestSyncerStopsOnCancel(t *testing.T) {
	w := NewWriter(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	provider := providers.ProviderFunc(func(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
		calls++
		cancel()
		return simpleGames(sport, "g1"), nil
	})
	NewSyncer(provider, w, SyncConfig{Enabled: true, Interval: time.Hour}, nil, nil).Run(ctx)
	if calls != 1 {
		t.Fatalf("expected a single fetch before cancellation, got %d", calls)
	}
}
