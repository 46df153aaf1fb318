package colors

import (
	"math/rand"
	"testing"
)

func TestSelectDodgersCardinalsIsLegible(t *testing.T) {
	pair := Select(0x003087, 0xB0B7BC, 0xC60C30, 0xFFFFFF)
	if pair.IsNeutral() {
		t.Fatalf("expected a real pair, got neutral fallback")
	}
	if pair.Home.Brightness() < MinBrightness || pair.Away.Brightness() < MinBrightness {
		t.Fatalf("expected legible colors, got %+v", pair)
	}
	if Distance(pair.Home, pair.Away) < MinSeparation {
		t.Fatalf("expected separated colors, got %+v", pair)
	}
	// Dodger blue is below the brightness floor, so the gray alternate must be used.
	if pair.Home != 0xB0B7BC {
		t.Fatalf("expected home alt gray, got %s", pair.Home)
	}
	if pair.Away != 0xC60C30 {
		t.Fatalf("expected cardinal red (farther from gray than white), got %s", pair.Away)
	}
}

func TestSelectFallsBackWhenEverythingIsDark(t *testing.T) {
	pair := Select(0x000000, 0x101010, 0x050505, 0x202020)
	if pair != NeutralPair {
		t.Fatalf("expected neutral pair, got %+v", pair)
	}
}

func TestSelectFallsBackWhenColorsTooSimilar(t *testing.T) {
	pair := Select(0xFF0000, 0xF00000, 0xFA0A0A, 0xEE0000)
	if !pair.IsNeutral() {
		t.Fatalf("expected neutral pair for near-identical reds, got %+v", pair)
	}
}

func TestSelectPrefersMaximumDistance(t *testing.T) {
	// White vs yellow passes both filters but white vs red is farther apart.
	pair := Select(White, White, Yellow, Red)
	if pair.Away != Red {
		t.Fatalf("expected red away for max distance, got %s", pair.Away)
	}
}

func TestSelectTieKeepsEnumerationOrder(t *testing.T) {
	// All four combinations are identical, so the first (home primary, away primary) wins.
	pair := Select(Red, Red, Cyan, Cyan)
	if pair.Home != Red || pair.Away != Cyan {
		t.Fatalf("unexpected pair %+v", pair)
	}

	// Mirrored candidates: hp×ap and ha×aa tie at the maximum; hp×ap is enumerated first.
	pair = Select(Red, Green, Green, Red)
	if pair.Home != Red || pair.Away != Green {
		t.Fatalf("expected first maximal combination, got %+v", pair)
	}
}

func TestSelectIsDeterministicAndTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		hp, ha := RGB(rng.Uint32()&0xFFFFFF), RGB(rng.Uint32()&0xFFFFFF)
		ap, aa := RGB(rng.Uint32()&0xFFFFFF), RGB(rng.Uint32()&0xFFFFFF)

		first := Select(hp, ha, ap, aa)
		if again := Select(hp, ha, ap, aa); again != first {
			t.Fatalf("selection not idempotent: %+v vs %+v", first, again)
		}

		_, feasible := bestPair(hp, ha, ap, aa)
		if first.IsNeutral() == feasible {
			t.Fatalf("fallback must trigger iff no combination survives: pair=%+v feasible=%v", first, feasible)
		}
		if !first.IsNeutral() {
			if first.Home.Brightness() < MinBrightness || first.Away.Brightness() < MinBrightness {
				t.Fatalf("selected an illegible color: %+v", first)
			}
			if first.Home != hp && first.Home != ha {
				t.Fatalf("home color not drawn from candidates: %+v", first)
			}
			if first.Away != ap && first.Away != aa {
				t.Fatalf("away color not drawn from candidates: %+v", first)
			}
		}
	}
}
