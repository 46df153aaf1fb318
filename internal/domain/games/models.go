package games

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/matrix-scoreboard/internal/colors"
)

// Sport identifies one of the leagues the display can show.
type Sport string

const (
	SportNFL   Sport = "nfl"
	SportMLB   Sport = "mlb"
	SportNBA   Sport = "nba"
	SportNCAAB Sport = "ncaab"
)

// Sports lists every sport in menu order.
var Sports = []Sport{SportNFL, SportMLB, SportNBA, SportNCAAB}

// ParseSport resolves a case-insensitive sport name.
func ParseSport(raw string) (Sport, error) {
	s := Sport(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown sport %q", raw)
	}
	return s, nil
}

// Valid reports whether s is a known sport.
func (s Sport) Valid() bool {
	for _, known := range Sports {
		if s == known {
			return true
		}
	}
	return false
}

// Label is the short upper-case name shown on the menu.
func (s Sport) Label() string {
	return strings.ToUpper(string(s))
}

// StatusKind returns the status variant games of this sport carry.
func (s Sport) StatusKind() StatusKind {
	switch s {
	case SportMLB:
		return KindBaseball
	case SportNFL:
		return KindFootball
	default:
		return KindBasketball
	}
}

// StatusKind tags the sport-specific status payload of a game.
type StatusKind string

const (
	KindBaseball   StatusKind = "baseball"
	KindBasketball StatusKind = "basketball"
	KindFootball   StatusKind = "football"
)

// BaseballSituation is the live state of a baseball game.
type BaseballSituation struct {
	// Inning is the upstream short detail, e.g. "Top 2nd", "Final" or a start time.
	Inning   string `json:"inning"`
	OnFirst  bool   `json:"onFirst"`
	OnSecond bool   `json:"onSecond"`
	OnThird  bool   `json:"onThird"`
	Balls    int    `json:"balls"`
	Strikes  int    `json:"strikes"`
	Outs     int    `json:"outs"`
}

// PeriodState is the quarter/half progress of a basketball or football game.
type PeriodState struct {
	Period    int  `json:"period"`
	Completed bool `json:"completed"`
}

// Status is a tagged variant: Baseball is set for KindBaseball, Period otherwise.
type Status struct {
	Kind     StatusKind         `json:"kind"`
	Baseball *BaseballSituation `json:"baseball,omitempty"`
	Period   *PeriodState       `json:"period,omitempty"`
}

// BaseballStatus wraps a baseball situation.
func BaseballStatus(s BaseballSituation) Status {
	return Status{Kind: KindBaseball, Baseball: &s}
}

// BasketballStatus wraps a basketball period.
func BasketballStatus(period int, completed bool) Status {
	return Status{Kind: KindBasketball, Period: &PeriodState{Period: period, Completed: completed}}
}

// FootballStatus wraps a football quarter.
func FootballStatus(period int, completed bool) Status {
	return Status{Kind: KindFootball, Period: &PeriodState{Period: period, Completed: completed}}
}

// TeamColors holds the two candidate colors a team publishes.
type TeamColors struct {
	Primary colors.RGB `json:"primary"`
	Alt     colors.RGB `json:"alt"`
}

// Game is one matchup as shown on the display. Scores are opaque strings because the
// feed reports placeholders before kickoff.
type Game struct {
	ID         string     `json:"id,omitempty"`
	Sport      Sport      `json:"sport"`
	HomeName   string     `json:"home"`
	AwayName   string     `json:"away"`
	HomeColors TeamColors `json:"homeColors"`
	AwayColors TeamColors `json:"awayColors"`
	HomeScore  string     `json:"homeScore"`
	AwayScore  string     `json:"awayScore"`
	Status     Status     `json:"status"`
}

// Matchup renders the list row text, e.g. "LAD at STL".
func (g Game) Matchup() string {
	return g.AwayName + " at " + g.HomeName
}

// SameColors reports whether both games carry the same four candidate colors.
func (g Game) SameColors(other Game) bool {
	return g.HomeColors == other.HomeColors && g.AwayColors == other.AwayColors
}

// Valid reports whether the game belongs to a known sport and carries the matching status variant.
func (g Game) Valid() bool {
	if !g.Sport.Valid() || g.Status.Kind != g.Sport.StatusKind() {
		return false
	}
	if g.Status.Kind == KindBaseball {
		return g.Status.Baseball != nil
	}
	return g.Status.Period != nil
}

// Snapshot is the cached payload for one sport.
type Snapshot struct {
	Sport   Sport  `json:"sport"`
	SavedAt string `json:"savedAt,omitempty"`
	Games   []Game `json:"games"`
}

// NewSnapshot builds a Snapshot payload.
func NewSnapshot(sport Sport, savedAt string, games []Game) Snapshot {
	return Snapshot{
		Sport:   sport,
		SavedAt: savedAt,
		Games:   games,
	}
}
