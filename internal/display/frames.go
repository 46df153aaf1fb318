package display

import (
	"fmt"

	"github.com/preston-bernstein/matrix-scoreboard/internal/clock"
	"github.com/preston-bernstein/matrix-scoreboard/internal/colors"
	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/timeutil"
)

const noGamesText = "NO GAMES"

// MenuFrame shows the selected sport between navigation arrows.
func MenuFrame(sport domaingames.Sport, ind Indicators) Frame {
	return Frame{
		View:       ViewMenu,
		Lines:      []Line{{Text: "< " + sport.Label() + " >", Color: colors.White}},
		Indicators: ind,
	}
}

// ListFrame shows up to ListRows matchups; the first row is the hovered game.
func ListFrame(sport domaingames.Sport, window []domaingames.Game, ind Indicators) Frame {
	lines := []Line{{Text: sport.Label(), Color: colors.White}}
	if len(window) == 0 {
		lines = append(lines, Line{Text: noGamesText, Color: colors.Stagnant})
	}
	for i, g := range window {
		if i >= ListRows {
			break
		}
		color := colors.Stagnant
		if i == 0 {
			color = colors.Hovered
		}
		lines = append(lines, Line{Text: g.Matchup(), Color: color})
	}
	return Frame{View: ViewList, Lines: lines, Indicators: ind}
}

// DetailFrame shows both teams in their contrast colors, scores and the status rows.
func DetailFrame(g domaingames.Game, pair colors.Pair, ind Indicators) Frame {
	lines := []Line{
		{Text: fmt.Sprintf("%-4s %s", g.AwayName, g.AwayScore), Color: pair.Away},
		{Text: fmt.Sprintf("%-4s %s", g.HomeName, g.HomeScore), Color: pair.Home},
	}
	for _, s := range StatusLines(g) {
		lines = append(lines, Line{Text: s, Color: colors.White})
	}
	return Frame{View: ViewDetail, Lines: lines, Indicators: ind}
}

// ClockFrame shows the 12-hour time in the current theme color.
func ClockFrame(r clock.Reading, color colors.RGB, ind Indicators) Frame {
	face, meridiem := timeutil.FormatClock(r.Hour, r.Minute)
	return Frame{
		View:       ViewClock,
		Lines:      []Line{{Text: face, Color: color}, {Text: meridiem, Color: color}},
		Indicators: ind,
	}
}
