package fixture

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/matrix-scoreboard/internal/colors"
	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

type team struct {
	abbr   string
	colors domaingames.TeamColors
}

func tc(primary, alt colors.RGB) domaingames.TeamColors {
	return domaingames.TeamColors{Primary: primary, Alt: alt}
}

var matchups = map[domaingames.Sport][][2]team{
	domaingames.SportNFL: {
		{{"KC", tc(0xe31837, 0xffb81c)}, {"BUF", tc(0x00338d, 0xc60c30)}},
		{{"PHI", tc(0x004c54, 0xa5acaf)}, {"DAL", tc(0x041e42, 0x869397)}},
	},
	domaingames.SportMLB: {
		{{"STL", tc(0xc41e3a, 0x0c2340)}, {"LAD", tc(0x005a9c, 0xffffff)}},
		{{"NYY", tc(0x003087, 0xe4002c)}, {"BOS", tc(0xbd3039, 0x0c2340)}},
		{{"CHC", tc(0x0e3386, 0xcc3433)}, {"MIL", tc(0x12284b, 0xffc52f)}},
	},
	domaingames.SportNBA: {
		{{"BOS", tc(0x007a33, 0xba9653)}, {"LAL", tc(0x552583, 0xfdb927)}},
		{{"GSW", tc(0x1d428a, 0xffc72c)}, {"MIA", tc(0x98002e, 0xf9a01b)}},
	},
	domaingames.SportNCAAB: {
		{{"DUKE", tc(0x003087, 0xffffff)}, {"UNC", tc(0x7bafd4, 0x13294b)}},
	},
}

// Provider returns a static set of games useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

// FetchSport returns a deterministic set of example games for sport.
func (p *Provider) FetchSport(ctx context.Context, sport domaingames.Sport) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pairs, ok := matchups[sport]
	if !ok {
		return nil, fmt.Errorf("fixture: unsupported sport %q", sport)
	}

	games := make([]domaingames.Game, 0, len(pairs))
	for i, pair := range pairs {
		home, away := pair[0], pair[1]
		games = append(games, domaingames.Game{
			ID:         fmt.Sprintf("fixture-%s-%d", sport, i+1),
			Sport:      sport,
			HomeName:   home.abbr,
			AwayName:   away.abbr,
			HomeColors: home.colors,
			AwayColors: away.colors,
			HomeScore:  fmt.Sprintf("%d", 2*i+1),
			AwayScore:  fmt.Sprintf("%d", i),
			Status:     fixtureStatus(sport, i),
		})
	}
	return games, nil
}

func fixtureStatus(sport domaingames.Sport, i int) domaingames.Status {
	switch sport.StatusKind() {
	case domaingames.KindBaseball:
		innings := []string{"Top 2nd", "Bot 7th", "7:05 PM EDT"}
		return domaingames.BaseballStatus(domaingames.BaseballSituation{
			Inning:  innings[i%len(innings)],
			OnFirst: i == 0,
			OnThird: i == 1,
			Balls:   i % 4,
			Strikes: 1,
			Outs:    i % 3,
		})
	case domaingames.KindFootball:
		return domaingames.FootballStatus(i+2, false)
	default:
		return domaingames.BasketballStatus(4, i == 0)
	}
}
