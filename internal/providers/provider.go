package providers

import (
	"context"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// SportProvider defines how upstream scoreboard data is fetched and normalized.
// Implementations return games in feed order; errors should be *FetchError so callers
// can tell timeouts, malformed payloads and unreachable upstreams apart.
type SportProvider interface {
	FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error)
}

// ProviderFunc adapts a function to SportProvider.
type ProviderFunc func(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error)

// FetchSport calls f.
func (f ProviderFunc) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	return f(ctx, sport)
}
