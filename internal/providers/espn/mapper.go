package espn

import (
	"strings"

	"github.com/preston-bernstein/matrix-scoreboard/internal/colors"
	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// mapEvent converts one scoreboard event; events without two competitors are skipped.
func mapEvent(sport domaingames.Sport, e eventResponse) (domaingames.Game, bool) {
	if len(e.Competitions) == 0 {
		return domaingames.Game{}, false
	}
	comp := e.Competitions[0]
	home, away, ok := splitCompetitors(comp.Competitors)
	if !ok {
		return domaingames.Game{}, false
	}

	homeDefault, awayDefault := defaultColor, defaultColor
	if sport == domaingames.SportNFL {
		homeDefault, awayDefault = defaultNFLHome, defaultNFLAway
	}

	return domaingames.Game{
		ID:         strings.TrimSpace(e.ID),
		Sport:      sport,
		HomeName:   abbreviation(home.Team),
		AwayName:   abbreviation(away.Team),
		HomeColors: teamColors(home.Team, homeDefault),
		AwayColors: teamColors(away.Team, awayDefault),
		HomeScore:  score(home),
		AwayScore:  score(away),
		Status:     mapStatus(sport, comp),
	}, true
}

// splitCompetitors prefers the homeAway marker and falls back to feed order (home first).
func splitCompetitors(cs []competitorResponse) (home, away competitorResponse, ok bool) {
	if len(cs) < 2 {
		return home, away, false
	}
	home, away = cs[0], cs[1]
	for _, c := range cs {
		switch strings.ToLower(c.HomeAway) {
		case "home":
			home = c
		case "away":
			away = c
		}
	}
	return home, away, true
}

func abbreviation(t teamResponse) string {
	if s := strings.TrimSpace(t.Abbreviation); s != "" {
		return s
	}
	return defaultPlaceholder
}

func teamColors(t teamResponse, primaryDefault string) domaingames.TeamColors {
	fallbackPrimary := colors.ParseHexOr(primaryDefault, colors.Black)
	return domaingames.TeamColors{
		Primary: colors.ParseHexOr(t.Color, fallbackPrimary),
		Alt:     colors.ParseHexOr(t.AlternateColor, colors.Black),
	}
}

func score(c competitorResponse) string {
	if c.Score == nil || strings.TrimSpace(string(*c.Score)) == "" {
		return defaultPlaceholder
	}
	return strings.TrimSpace(string(*c.Score))
}

func mapStatus(sport domaingames.Sport, comp competitionResponse) domaingames.Status {
	switch sport.StatusKind() {
	case domaingames.KindBaseball:
		inning := strings.TrimSpace(comp.Status.Type.ShortDetail)
		if inning == "" {
			inning = defaultInning
		}
		situation := domaingames.BaseballSituation{Inning: inning}
		if s := comp.Situation; s != nil {
			situation.OnFirst = s.OnFirst
			situation.OnSecond = s.OnSecond
			situation.OnThird = s.OnThird
			situation.Balls = s.Balls
			situation.Strikes = s.Strikes
			situation.Outs = s.Outs
		}
		return domaingames.BaseballStatus(situation)
	case domaingames.KindFootball:
		return domaingames.FootballStatus(comp.Status.Period, comp.Status.Type.Completed)
	default:
		return domaingames.BasketballStatus(comp.Status.Period, comp.Status.Type.Completed)
	}
}
