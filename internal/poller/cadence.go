package poller

import (
	"fmt"
	"sort"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// Cadence is the set of seconds-past-the-minute at which periodic work fires.
type Cadence []int

// NewCadence validates and normalizes a set of second marks.
func NewCadence(seconds ...int) (Cadence, error) {
	seen := make(map[int]struct{}, len(seconds))
	out := make(Cadence, 0, len(seconds))
	for _, s := range seconds {
		if s < 0 || s > 59 {
			return nil, fmt.Errorf("cadence second %d out of range 0-59", s)
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Ints(out)
	return out, nil
}

// Contains reports whether second is one of the marks.
func (c Cadence) Contains(second int) bool {
	for _, s := range c {
		if s == second {
			return true
		}
	}
	return false
}

// Cadences groups the marks used by each view.
type Cadences struct {
	List           Cadence `yaml:"list"`
	Detail         Cadence `yaml:"detail"`
	BaseballDetail Cadence `yaml:"baseball_detail"`
	Reconnect      Cadence `yaml:"reconnect"`
}

// DefaultCadences returns the stock refresh and reconnect marks.
func DefaultCadences() Cadences {
	return Cadences{
		List:           Cadence{10},
		Detail:         Cadence{10, 20, 40, 50},
		BaseballDetail: Cadence{20, 50},
		Reconnect:      Cadence{30},
	}
}

// DetailFor returns the detail-view cadence for sport.
func (c Cadences) DetailFor(sport domaingames.Sport) Cadence {
	if sport.StatusKind() == domaingames.KindBaseball {
		return c.BaseballDetail
	}
	return c.Detail
}
