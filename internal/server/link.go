package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/matrix-scoreboard/internal/config"
	"github.com/preston-bernstein/matrix-scoreboard/internal/connectivity"
)

// linkProber is the background connectivity source the server starts and stops.
type linkProber interface {
	connectivity.Link
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

var newLink = func(cfg config.Config, logger *slog.Logger) linkProber {
	return connectivity.NewProber(connectivity.ProberConfig{
		Addr:     cfg.Link.ProbeAddr,
		Interval: cfg.Link.ProbeInterval,
	}, logger)
}

func credentials(cfg config.Config) connectivity.Credentials {
	return connectivity.Credentials{SSID: cfg.Link.SSID, Passphrase: cfg.Link.Passphrase}
}
