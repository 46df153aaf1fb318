package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/matrix-scoreboard/internal/config"
	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers/espn"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers/fixture"
	"github.com/preston-bernstein/matrix-scoreboard/internal/testutil"
)

func TestSelectProvider(t *testing.T) {
	cases := []struct {
		name     string
		provider string
		espn     bool
	}{
		{"espn", "espn", true},
		{"default", "", true},
		{"fixture", "fixture", false},
		{"unknown falls back", "sportsdata", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := selectProvider(config.Config{Provider: tc.provider}, nil)
			_, isESPN := p.(*espn.Client)
			_, isFixture := p.(*fixture.Provider)
			if isESPN != tc.espn || isFixture == tc.espn {
				t.Fatalf("unexpected provider %T", p)
			}
		})
	}
}

func TestProviderFactoryBuildsRetryingFixture(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: "fixture", FetchRetries: 1})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	games, err := prov.FetchSport(context.Background(), domaingames.SportNBA)
	if err != nil || len(games) == 0 {
		t.Fatalf("expected fixture games through the wrapper, got %v %v", games, err)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("ESPN", nil); got != "espn" {
		t.Fatalf("expected lower-cased explicit name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "fixture" {
		t.Fatalf("expected name from provider, got %s", got)
	}
	if got := normalizeProviderName("", testutil.EmptyProvider{}); got != "testutil.emptyprovider" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}

func TestBuildSnapshotsUsesCacheDir(t *testing.T) {
	cfg := testConfig(t)
	components := buildSnapshots(cfg, fixture.New(), nil)
	if components.store == nil || components.writer == nil || components.syncer == nil {
		t.Fatalf("expected snapshots components to be initialized")
	}
	if components.writer.BasePath() != cfg.Cache.Dir {
		t.Fatalf("expected writer rooted at cache dir, got %s", components.writer.BasePath())
	}
	// Warm-up is disabled in the test config, so Run returns immediately.
	if n := components.syncer.Run(context.Background()); n != 0 {
		t.Fatalf("expected disabled syncer to write nothing, got %d", n)
	}
}
