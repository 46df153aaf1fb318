package server

import (
	"log/slog"

	"github.com/preston-bernstein/matrix-scoreboard/internal/config"
	"github.com/preston-bernstein/matrix-scoreboard/internal/providers"
	"github.com/preston-bernstein/matrix-scoreboard/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
	syncer *snapshots.Syncer
}

func buildSnapshots(cfg config.Config, provider providers.SportProvider, logger *slog.Logger) snapshotComponents {
	basePath := cfg.Cache.Dir
	writer := snapshots.NewWriter(basePath)
	store := snapshots.NewFSStore(basePath)
	syncer := snapshots.NewSyncer(provider, writer, snapshots.SyncConfig{
		Enabled:  cfg.Cache.Warm,
		Interval: cfg.Cache.WarmInterval,
		MaxAge:   cfg.Cache.WarmMaxAge,
	}, logger, nil)

	return snapshotComponents{
		store:  store,
		writer: writer,
		syncer: syncer,
	}
}
