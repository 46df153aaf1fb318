package display

import (
	"fmt"
	"regexp"
	"strings"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

const (
	arrowTop    = "▲"
	arrowBottom = "▼"
)

var startTimePattern = regexp.MustCompile(`\d+:\d+\s*(AM|PM)`)

// InningText shortens a baseball short detail for the matrix: a scheduled game shows
// its start time, a live half inning shows an arrow and the inning.
func InningText(detail string) string {
	detail = strings.TrimSpace(detail)
	if m := startTimePattern.FindString(detail); m != "" {
		return m
	}
	switch {
	case strings.HasPrefix(detail, "Top "):
		return arrowTop + strings.TrimPrefix(detail, "Top ")
	case strings.HasPrefix(detail, "Bot "):
		return arrowBottom + strings.TrimPrefix(detail, "Bot ")
	case strings.HasPrefix(detail, "Bottom "):
		return arrowBottom + strings.TrimPrefix(detail, "Bottom ")
	}
	return detail
}

// BasesText renders occupied bases as "1-3" style, "-" for empty.
func BasesText(s domaingames.BaseballSituation) string {
	mark := func(on bool, label string) string {
		if on {
			return label
		}
		return "-"
	}
	return mark(s.OnFirst, "1") + mark(s.OnSecond, "2") + mark(s.OnThird, "3")
}

// CountText renders balls, strikes and outs.
func CountText(s domaingames.BaseballSituation) string {
	return fmt.Sprintf("B%d S%d O%d", s.Balls, s.Strikes, s.Outs)
}

// PeriodBadge renders a period as Q1..Q4 (H1/H2 for college basketball), OT after
// regulation and FIN once completed.
func PeriodBadge(sport domaingames.Sport, p domaingames.PeriodState) string {
	if p.Completed {
		return "FIN"
	}
	if p.Period <= 0 {
		return "PRE"
	}
	prefix, regulation := "Q", 4
	if sport == domaingames.SportNCAAB {
		prefix, regulation = "H", 2
	}
	if p.Period <= regulation {
		return fmt.Sprintf("%s%d", prefix, p.Period)
	}
	if ot := p.Period - regulation; ot > 1 {
		return fmt.Sprintf("OT%d", ot)
	}
	return "OT"
}

// StatusLines renders the sport-specific status rows of a game.
func StatusLines(g domaingames.Game) []string {
	switch {
	case g.Status.Kind == domaingames.KindBaseball && g.Status.Baseball != nil:
		s := *g.Status.Baseball
		return []string{InningText(s.Inning), BasesText(s) + " " + CountText(s)}
	case g.Status.Period != nil:
		return []string{PeriodBadge(g.Sport, *g.Status.Period)}
	default:
		return nil
	}
}
