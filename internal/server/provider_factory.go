package server

import (
	"log/slog"

	"github.com/preston-bernstein/matrix-scoreboard/internal/config"
	"github.com/preston-bernstein/matrix-scoreboard/internal/metrics"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
)

// providerFactory assembles the provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.SportProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

// wrap adds retries; FETCH_RETRIES counts retries, so attempts are one more.
func (f providerFactory) wrap(cfg config.Config, base providers.SportProvider) providers.SportProvider {
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.FetchRetries+1, 0)
}
