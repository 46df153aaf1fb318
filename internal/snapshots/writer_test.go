package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

func TestWriterWritesSnapshotAndManifest(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC))
	w := NewWriterWithClock(dir, clock)

	saveSport(t, w, domaingames.SportMLB, simpleGames(domaingames.SportMLB, "g1", "g2"))
	requireSnapshotExists(t, w, domaingames.SportMLB)

	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("expected manifest, got err %v", err)
	}
	meta, ok := m.Sports[domaingames.SportMLB]
	if !ok || meta.Count != 2 {
		t.Fatalf("unexpected manifest entry %+v", meta)
	}
	if !meta.SavedAt.Equal(clock.Now()) {
		t.Fatalf("expected savedAt %v, got %v", clock.Now(), meta.SavedAt)
	}
}

func TestWriterSkipsIdenticalGames(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC))
	w := NewWriterWithClock(dir, clock)
	games := simpleGames(domaingames.SportNBA, "g1")

	saveSport(t, w, domaingames.SportNBA, games)
	first, err := os.ReadFile(SportSnapshotPath(dir, domaingames.SportNBA))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	savedAt := clock.Now()

	clock.Advance(time.Minute)
	saveSport(t, w, domaingames.SportNBA, games)
	second, _ := os.ReadFile(SportSnapshotPath(dir, domaingames.SportNBA))
	if string(first) != string(second) {
		t.Fatalf("expected identical games to leave the file untouched")
	}

	m, _ := ReadManifest(dir)
	meta := m.Sports[domaingames.SportNBA]
	if !meta.SavedAt.Equal(savedAt) {
		t.Fatalf("expected savedAt to stay %v, got %v", savedAt, meta.SavedAt)
	}
	if !meta.LastChecked.Equal(clock.Now()) {
		t.Fatalf("expected lastChecked to advance, got %v", meta.LastChecked)
	}

	clock.Advance(time.Minute)
	saveSport(t, w, domaingames.SportNBA, simpleGames(domaingames.SportNBA, "g1", "g2"))
	m, _ = ReadManifest(dir)
	if m.Sports[domaingames.SportNBA].Count != 2 || !m.Sports[domaingames.SportNBA].SavedAt.Equal(clock.Now()) {
		t.Fatalf("expected changed games to rewrite, got %+v", m.Sports[domaingames.SportNBA])
	}
}

func TestWriterTracksSportsIndependently(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	saveSport(t, w, domaingames.SportNFL, simpleGames(domaingames.SportNFL, "a"))
	saveSport(t, w, domaingames.SportNCAAB, simpleGames(domaingames.SportNCAAB, "b", "c", "d"))

	m, _ := ReadManifest(dir)
	if len(m.Sports) != 2 || m.Sports[domaingames.SportNCAAB].Count != 3 {
		t.Fatalf("unexpected manifest %+v", m.Sports)
	}
}

func TestWriterErrors(t *testing.T) {
	var nilWriter *Writer
	if err := nilWriter.SaveSport(domaingames.SportNBA, nil); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if nilWriter.BasePath() != "" {
		t.Fatalf("expected empty base path for nil writer")
	}
	if err := NewWriter(t.TempDir()).SaveSport(domaingames.Sport("nhl"), nil); err == nil {
		t.Fatalf("expected error for unknown sport")
	}
}

func TestReadManifestMissingReturnsDefault(t *testing.T) {
	m, err := ReadManifest(t.TempDir())
	if err == nil {
		t.Fatalf("expected error for missing manifest")
	}
	if m.Version != 1 || m.Sports == nil {
		t.Fatalf("expected default manifest, got %+v", m)
	}
}
