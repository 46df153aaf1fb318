package testutil

import (
	"errors"
	"testing"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir())
}

// WriteSnapshot writes n sample games for sport.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, sport domaingames.Sport, n int) {
	t.Helper()
	if err := writeSnapshotPayload(w, sport, n); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", sport, err)
	}
}

func writeSnapshotPayload(w *snapshots.Writer, sport domaingames.Sport, n int) error {
	if w == nil {
		return errors.New("nil writer")
	}
	return w.SaveSport(sport, SampleGames(sport, n))
}

// SnapshotPath returns the expected file path for a sport's snapshot.
func SnapshotPath(w *snapshots.Writer, sport domaingames.Sport) string {
	return snapshots.SportSnapshotPath(w.BasePath(), sport)
}
