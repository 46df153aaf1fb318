package snapshots

import (
	"encoding/json"
	"os"
	"time"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int                             `json:"version"`
	GeneratedAt time.Time                       `json:"generatedAt"`
	Sports      map[domaingames.Sport]SportMeta `json:"sports"`
}

// SportMeta describes the cached scoreboard of one sport.
type SportMeta struct {
	Count       int       `json:"count"`
	SavedAt     time.Time `json:"savedAt"`
	LastChecked time.Time `json:"lastChecked"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Sports:  make(map[domaingames.Sport]SportMeta),
	}
}

// ReadManifest loads the manifest under basePath, returning an empty one when it is missing or unreadable.
func ReadManifest(basePath string) (Manifest, error) {
	var m Manifest
	if err := decodeFile(ManifestPath(basePath), &m); err != nil {
		return defaultManifest(), err
	}
	if m.Sports == nil {
		m.Sports = make(map[domaingames.Sport]SportMeta)
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now
	path := ManifestPath(basePath)
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
