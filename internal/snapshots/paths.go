package snapshots

import (
	"fmt"
	"path/filepath"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

const (
	gamesDir     = "games"
	manifestFile = "manifest.json"
)

// SportSnapshotPath builds the path to the cached scoreboard for a sport.
func SportSnapshotPath(basePath string, sport domaingames.Sport) string {
	return filepath.Join(basePath, gamesDir, fmt.Sprintf("%s.json", sport))
}

// ManifestPath builds the path to the cache manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
