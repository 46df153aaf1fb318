package espn

import (
	"fmt"
	"net/http"
	"strings"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// sportPath maps a sport to its scoreboard path segment.
func sportPath(sport domaingames.Sport) (string, error) {
	switch sport {
	case domaingames.SportNFL:
		return "football/nfl", nil
	case domaingames.SportMLB:
		return "baseball/mlb", nil
	case domaingames.SportNBA:
		return "basketball/nba", nil
	case domaingames.SportNCAAB:
		return "basketball/mens-college-basketball", nil
	default:
		return "", fmt.Errorf("espn: unsupported sport %q", sport)
	}
}
