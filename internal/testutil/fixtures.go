package testutil

import (
	"fmt"

	"github.com/preston-bernstein/matrix-scoreboard/internal/colors"
	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// SampleGame returns a minimal valid game for sport between away and home.
func SampleGame(sport domaingames.Sport, away, home string) domaingames.Game {
	var status domaingames.Status
	switch sport.StatusKind() {
	case domaingames.KindBaseball:
		status = domaingames.BaseballStatus(domaingames.BaseballSituation{Inning: "Top 1st"})
	case domaingames.KindFootball:
		status = domaingames.FootballStatus(1, false)
	default:
		status = domaingames.BasketballStatus(1, false)
	}
	return domaingames.Game{
		ID:         fmt.Sprintf("%s-%s-%s", sport, away, home),
		Sport:      sport,
		HomeName:   home,
		AwayName:   away,
		HomeColors: domaingames.TeamColors{Primary: colors.Red, Alt: colors.White},
		AwayColors: domaingames.TeamColors{Primary: colors.Cyan, Alt: colors.Yellow},
		HomeScore:  "0",
		AwayScore:  "0",
		Status:     status,
	}
}

// SampleGames returns n distinct games for sport.
func SampleGames(sport domaingames.Sport, n int) []domaingames.Game {
	games := make([]domaingames.Game, 0, n)
	for i := 0; i < n; i++ {
		games = append(games, SampleGame(sport, fmt.Sprintf("A%d", i), fmt.Sprintf("H%d", i)))
	}
	return games
}

// DodgersVsCardinals is STL at LAD with both teams' published colors.
func DodgersVsCardinals() domaingames.Game {
	g := SampleGame(domaingames.SportMLB, "STL", "LAD")
	g.HomeColors = domaingames.TeamColors{Primary: 0x003087, Alt: 0xB0B7BC}
	g.AwayColors = domaingames.TeamColors{Primary: 0xC60C30, Alt: 0xFFFFFF}
	return g
}
