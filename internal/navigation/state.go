package navigation

import (
	"fmt"

	"github.com/preston-bernstein/matrix-scoreboard/internal/display"
	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// Kind is the active view of the machine.
type Kind int

const (
	KindMenu Kind = iota
	KindSportList
	KindGameDetail
	KindClock
)

// State is the navigation position. Selection is meaningful in the menu, Sport in
// the list and detail views, and Index in the detail view.
type State struct {
	Kind      Kind
	Selection int
	Sport     domaingames.Sport
	Index     int
}

// View maps the state to the display view it renders.
func (s State) View() display.View {
	switch s.Kind {
	case KindSportList:
		return display.ViewList
	case KindGameDetail:
		return display.ViewDetail
	case KindClock:
		return display.ViewClock
	default:
		return display.ViewMenu
	}
}

func (s State) String() string {
	switch s.Kind {
	case KindSportList:
		return fmt.Sprintf("list(%s)", s.Sport)
	case KindGameDetail:
		return fmt.Sprintf("detail(%s, %d)", s.Sport, s.Index)
	case KindClock:
		return "clock"
	default:
		return fmt.Sprintf("menu(%s)", domaingames.Sports[s.Selection])
	}
}

// ParseStartupView resolves the configured first view; only menu and clock are allowed.
func ParseStartupView(raw string) (Kind, error) {
	switch raw {
	case "", string(display.ViewMenu):
		return KindMenu, nil
	case string(display.ViewClock):
		return KindClock, nil
	default:
		return KindMenu, fmt.Errorf("startup view %q must be menu or clock", raw)
	}
}
