package snapshots

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
)

// SyncConfig controls the boot-time cache warm-up.
type SyncConfig struct {
	Enabled  bool
	Interval time.Duration
	MaxAge   time.Duration
}

// Syncer prefetches every sport's scoreboard into the cache so the first offline
// boot has something to show.
type Syncer struct {
	provider providers.SportProvider
	writer   *Writer
	cfg      SyncConfig
	logger   *slog.Logger
	clock    clockwork.Clock
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(provider providers.SportProvider, writer *Writer, cfg SyncConfig, logger *slog.Logger, clock clockwork.Clock) *Syncer {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 6 * time.Hour
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Syncer{
		provider: provider,
		writer:   writer,
		cfg:      cfg,
		logger:   logger,
		clock:    clock,
	}
}

// Run fetches each sport whose cache is missing or older than MaxAge, spaced by
// Interval. It returns the number of sports written. Callers should run this in a goroutine.
func (s *Syncer) Run(ctx context.Context) int {
	if s == nil || !s.cfg.Enabled || s.writer == nil || s.provider == nil {
		return 0
	}
	due := s.dueSports(s.clock.Now().UTC())
	logging.Info(s.logger, "snapshot sync starting", logging.FieldCount, len(due), "interval", s.cfg.Interval.String())

	written := 0
	for i, sport := range due {
		select {
		case <-ctx.Done():
			return written
		default:
		}
		if s.fetchAndWrite(ctx, sport) {
			written++
		}
		if i < len(due)-1 {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
	return written
}

func (s *Syncer) dueSports(now time.Time) []domaingames.Sport {
	m, _ := ReadManifest(s.writer.basePath)
	var due []domaingames.Sport
	for _, sport := range domaingames.Sports {
		meta, ok := m.Sports[sport]
		if !ok || meta.SavedAt.IsZero() || now.Sub(meta.SavedAt) >= s.cfg.MaxAge {
			due = append(due, sport)
		}
	}
	return due
}

func (s *Syncer) fetchAndWrite(ctx context.Context, sport domaingames.Sport) bool {
	start := s.clock.Now()
	games, err := s.provider.FetchSport(ctx, sport)
	if err != nil {
		logging.Warn(s.logger, "snapshot sync fetch failed", logging.FieldSport, sport, "err", err)
		return false
	}
	if len(games) == 0 {
		logging.Warn(s.logger, "snapshot sync received no games", logging.FieldSport, sport)
		return false
	}
	if err := s.writer.SaveSport(sport, games); err != nil {
		logging.Warn(s.logger, "snapshot sync write failed", logging.FieldSport, sport, "err", err)
		return false
	}
	logging.Info(s.logger, "snapshot written",
		logging.FieldSport, sport,
		logging.FieldCount, len(games),
		logging.FieldDurationMS, s.clock.Since(start).Milliseconds(),
	)
	return true
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) {
	timer := s.clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.Chan():
	}
}
