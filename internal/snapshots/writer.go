package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// Saver persists the latest good scoreboard for a sport.
type Saver interface {
	SaveSport(sport domaingames.Sport, games []domaingames.Game) error
}

// Writer persists snapshots and the manifest. Saves are serialized because every
// sport shares the manifest file.
type Writer struct {
	basePath string
	clock    clockwork.Clock
	mu       sync.Mutex
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return NewWriterWithClock(basePath, clockwork.NewRealClock())
}

// NewWriterWithClock constructs a writer whose timestamps come from clock.
func NewWriterWithClock(basePath string, clock clockwork.Clock) *Writer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Writer{basePath: basePath, clock: clock}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// SaveSport writes the scoreboard for sport, preserving feed order. An identical
// game list leaves the file untouched and only refreshes the manifest.
func (w *Writer) SaveSport(sport domaingames.Sport, games []domaingames.Game) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if !sport.Valid() {
		return fmt.Errorf("snapshot sport %q unknown", sport)
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now().UTC()
	target := SportSnapshotPath(w.basePath, sport)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if w.unchanged(target, games) {
		return w.updateManifest(sport, len(games), time.Time{}, now)
	}

	data, err := json.MarshalIndent(domaingames.NewSnapshot(sport, now.Format(time.RFC3339), games), "", "  ")
	if err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(sport, len(games), now, now)
}

func (w *Writer) unchanged(target string, games []domaingames.Game) bool {
	var existing domaingames.Snapshot
	if err := decodeFile(target, &existing); err != nil {
		return false
	}
	prev, err := json.Marshal(existing.Games)
	if err != nil {
		return false
	}
	next, err := json.Marshal(games)
	if err != nil {
		return false
	}
	return bytes.Equal(prev, next)
}

func (w *Writer) updateManifest(sport domaingames.Sport, count int, savedAt, now time.Time) error {
	m, _ := ReadManifest(w.basePath)
	meta := m.Sports[sport]
	meta.Count = count
	meta.LastChecked = now
	if !savedAt.IsZero() {
		meta.SavedAt = savedAt
	}
	m.Sports[sport] = meta
	return writeManifest(w.basePath, m, now)
}
