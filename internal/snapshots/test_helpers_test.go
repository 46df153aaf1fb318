package snapshots

import (
	"os"
	"testing"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

func simpleGames(sport domaingames.Sport, ids ...string) []domaingames.Game {
	games := make([]domaingames.Game, 0, len(ids))
	for _, id := range ids {
		games = append(games, domaingames.Game{
			ID:       id,
			Sport:    sport,
			HomeName: "H" + id,
			AwayName: "A" + id,
			Status:   domaingames.BasketballStatus(1, false),
		})
	}
	return games
}

func saveSport(t *testing.T, w *Writer, sport domaingames.Sport, games []domaingames.Game) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for sport %s", sport)
	}
	if err := w.SaveSport(sport, games); err != nil {
		t.Fatalf("failed to save snapshot %s: %v", sport, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, sport domaingames.Sport) {
	t.Helper()
	if _, err := os.Stat(SportSnapshotPath(w.BasePath(), sport)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", sport, err)
	}
}
