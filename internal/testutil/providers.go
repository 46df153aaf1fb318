package testutil

import (
	"context"
	"sync"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
)

// GoodProvider returns the provided games with no error.
type GoodProvider struct {
	Games []domaingames.Game
}

func (p GoodProvider) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	_ = ctx
	_ = sport
	return p.Games, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	return nil, p.Err
}

// EmptyProvider returns no games, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	return []domaingames.Game{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	return nil, providers.ErrProviderUnavailable
}

// Response is one scripted provider reply.
type Response struct {
	Games []domaingames.Game
	Err   error
}

// ScriptedProvider replays Responses in order, repeating the last one once exhausted.
type ScriptedProvider struct {
	mu        sync.Mutex
	Responses []Response
	calls     int
}

func (p *ScriptedProvider) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if len(p.Responses) == 0 {
		return nil, providers.ErrProviderUnavailable
	}
	i := p.calls - 1
	if i >= len(p.Responses) {
		i = len(p.Responses) - 1
	}
	r := p.Responses[i]
	return r.Games, r.Err
}

// Calls reports how many fetches were made.
func (p *ScriptedProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
