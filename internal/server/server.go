package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/preston-bernstein/matrix-scoreboard/internal/clock"
	"github.com/preston-bernstein/matrix-scoreboard/internal/config"
	"github.com/preston-bernstein/matrix-scoreboard/internal/connectivity"
	"github.com/preston-bernstein/matrix-scoreboard/internal/display"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
	"github.com/preston-bernstein/matrix-scoreboard/internal/metrics"
	"github.com/preston-bernstein/matrix-scoreboard/internal/navigation"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
	"github.com/preston-bernstein/matrix-scoreboard/internal/snapshots"
	"github.com/preston-bernstein/matrix-scoreboard/internal/store"
	"github.com/preston-bernstein/matrix-scoreboard/internal/timeutil"
)

var metricsSetup = metrics.Setup

// Server owns every long-lived component of the scoreboard and their lifecycle.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	registry      *store.Registry
	machine       *navigation.Machine
	runner        *navigation.Runner
	link          linkProber
	monitor       *connectivity.Monitor
	panel         io.Closer
	syncer        *snapshots.Syncer
	metricsServer httpServer
	metricsStop   func(context.Context) error

	wg sync.WaitGroup
}

// New constructs a server with the configured provider, cache, link and buttons.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.SportProvider, recorder *metrics.Recorder) (*Server, error) {
	startup, err := navigation.ParseStartupView(cfg.StartupView)
	if err != nil {
		return nil, err
	}

	recorder, promHandler, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	snaps := buildSnapshots(cfg, provider, logger)
	registry := store.NewRegistry(provider, snaps.store, snaps.writer, logger, recorder)

	loc, err := timeutil.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warn(logger, "unknown timezone, using UTC", "timezone", cfg.Timezone, "error", err)
	}
	wall := clock.New(nil, loc)

	link := newLink(cfg, logger)
	monitor := connectivity.NewMonitor(link, credentials(cfg), cfg.Timing.Cadences.Reconnect, logger, recorder, 0)
	edges, panel := buildButtons(cfg, logger)

	machine := navigation.New(registry, display.NewLogRenderer(logger), navigation.Options{
		Cadences:    cfg.Timing.Cadences,
		StartupView: startup,
	}, logger, recorder)
	runner := navigation.NewRunner(machine, edges, wall, monitor, cfg.PollInterval, logger)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		registry:      registry,
		machine:       machine,
		runner:        runner,
		link:          link,
		monitor:       monitor,
		panel:         panel,
		syncer:        snaps.syncer,
		metricsServer: buildMetricsServer(cfg, promHandler, registry, link),
		metricsStop:   metricsShutdown,
	}, nil
}

// Run starts the link probe, metrics server and cache warm-up, then drives the display
// loop until ctx is cancelled and shuts everything down.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.link.Start(ctx)
	s.startWarmUp(ctx)

	if err := s.runner.Run(ctx); err != nil {
		logging.Error(s.logger, "display loop failed", err)
		if stop != nil {
			stop()
		}
	}
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startWarmUp(ctx context.Context) {
	if s.syncer == nil || !s.cfg.Cache.Warm {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		written := s.syncer.Run(ctx)
		logging.Info(s.logger, "cache warm-up finished", logging.FieldCount, written)
	}()
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", "addr", s.metricsServer.Addr())
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.link.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop link prober", err)
	}
	s.monitor.Wait()
	s.wg.Wait()

	if s.panel != nil {
		if err := s.panel.Close(); err != nil {
			logging.Warn(s.logger, "button panel close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

// buildMetricsServer serves /metrics and /healthz on the metrics port. Nothing is
// served when metrics are disabled.
func buildMetricsServer(cfg config.Config, promHandler http.Handler, statuses statusSource, link linkSource) httpServer {
	if !cfg.Metrics.Enabled || promHandler == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promHandler)
	mux.Handle("/healthz", healthHandler(statuses, link))

	return netHTTPServer{
		srv: &http.Server{
			Addr:         ":" + cfg.Metrics.Port,
			Handler:      mux,
			ReadTimeout:  metricsReadTimeout,
			WriteTimeout: metricsWriteTimeout,
			IdleTimeout:  metricsIdleTimeout,
		},
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the metrics HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	if s.metricsServer == nil {
		return nil
	}
	return s.metricsServer.Handler()
}
