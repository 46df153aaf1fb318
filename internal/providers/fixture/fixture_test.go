package fixture

import (
	"context"
	"testing"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

func TestFetchSportReturnsDeterministicGames(t *testing.T) {
	p := New()

	for _, sport := range domaingames.Sports {
		games, err := p.FetchSport(context.Background(), sport)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", sport, err)
		}
		if len(games) == 0 {
			t.Fatalf("%s: expected games", sport)
		}
		for _, g := range games {
			if !g.Valid() {
				t.Fatalf("%s: invalid game %+v", sport, g)
			}
		}
		again, _ := p.FetchSport(context.Background(), sport)
		if again[0].ID != games[0].ID || again[0].Matchup() != games[0].Matchup() {
			t.Fatalf("%s: expected deterministic output", sport)
		}
	}
}

func TestFetchSportMLBHasThreeGames(t *testing.T) {
	games, err := New().FetchSport(context.Background(), domaingames.SportMLB)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	if games[0].Matchup() != "LAD at STL" {
		t.Fatalf("unexpected first matchup %q", games[0].Matchup())
	}
}

func TestFetchSportHonorsContextAndUnknownSport(t *testing.T) {
	p := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.FetchSport(ctx, domaingames.SportNBA); err == nil {
		t.Fatalf("expected cancelled context error")
	}
	if _, err := p.FetchSport(context.Background(), domaingames.Sport("nhl")); err == nil {
		t.Fatalf("expected unknown sport error")
	}
	if p.Name() != "fixture" {
		t.Fatalf("unexpected name %s", p.Name())
	}
}
