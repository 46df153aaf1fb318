package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// ErrNotFound is returned when no cached scoreboard exists for a sport.
var ErrNotFound = errors.New("snapshot not found")

// Store defines how cached scoreboards are loaded.
type Store interface {
	LoadSport(sport domaingames.Sport) ([]domaingames.Game, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSport reads the cached games for sport, in the order they were saved.
// Files are expected at {basePath}/games/{sport}.json with a Snapshot payload.
func (s *FSStore) LoadSport(sport domaingames.Sport) ([]domaingames.Game, error) {
	snap, err := s.LoadSnapshot(sport)
	if err != nil {
		return nil, err
	}
	return snap.Games, nil
}

// LoadSnapshot reads the full cached payload for sport.
func (s *FSStore) LoadSnapshot(sport domaingames.Sport) (domaingames.Snapshot, error) {
	if s == nil {
		return domaingames.Snapshot{}, errors.New("snapshot store not configured")
	}
	if !sport.Valid() {
		return domaingames.Snapshot{}, fmt.Errorf("snapshot sport %q unknown", sport)
	}
	var payload domaingames.Snapshot
	if err := decodeFile(SportSnapshotPath(s.basePath, sport), &payload); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domaingames.Snapshot{}, fmt.Errorf("%s: %w", sport, ErrNotFound)
		}
		return domaingames.Snapshot{}, err
	}
	if payload.Sport == "" {
		payload.Sport = sport
	}
	return payload, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
