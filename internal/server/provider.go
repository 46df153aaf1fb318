package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/matrix-scoreboard/internal/config"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers/espn"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.SportProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	case "espn", "":
		return espn.NewClient(espn.Config{
			BaseURL:    cfg.ESPNBaseURL,
			HTTPClient: &http.Client{Timeout: cfg.FetchTimeout},
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return fixture.New()
	}
}
