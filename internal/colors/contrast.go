package colors

const (
	// MinBrightness rejects colors too dark to read on the black panel.
	MinBrightness = 50.0
	// MinSeparation rejects pairs too similar to tell apart at low resolution.
	MinSeparation = 100.0
)

// Pair is the resolved display color for each team.
type Pair struct {
	Home RGB
	Away RGB
}

// NeutralPair is returned when no candidate combination is legible.
var NeutralPair = Pair{Home: Neutral, Away: Neutral}

// IsNeutral reports whether p is the fallback pair. Two identical colors can never pass
// the separation filter, so this only happens on fallback.
func (p Pair) IsNeutral() bool {
	return p == NeutralPair
}

// Select picks the most distinguishable legible pair out of each team's two candidates.
// Combinations are tried as homePrimary×awayPrimary, homePrimary×awayAlt,
// homeAlt×awayPrimary, homeAlt×awayAlt; the first of equally distant pairs wins.
func Select(homePrimary, homeAlt, awayPrimary, awayAlt RGB) Pair {
	best, ok := bestPair(homePrimary, homeAlt, awayPrimary, awayAlt)
	if !ok {
		return NeutralPair
	}
	return best
}

func bestPair(homePrimary, homeAlt, awayPrimary, awayAlt RGB) (Pair, bool) {
	var (
		best     Pair
		bestDist float64
		found    bool
	)
	for _, home := range [2]RGB{homePrimary, homeAlt} {
		for _, away := range [2]RGB{awayPrimary, awayAlt} {
			if home.Brightness() < MinBrightness || away.Brightness() < MinBrightness {
				continue
			}
			dist := Distance(home, away)
			if dist < MinSeparation {
				continue
			}
			if !found || dist > bestDist {
				best = Pair{Home: home, Away: away}
				bestDist = dist
				found = true
			}
		}
	}
	return best, found
}
