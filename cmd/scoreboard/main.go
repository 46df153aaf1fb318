package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/matrix-scoreboard/internal/config"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
	"github.com/preston-bernstein/matrix-scoreboard/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "matrix-scoreboard"
)

func main() {
	if os.Getenv("SKIP_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	// A missing .env is normal on a provisioned device.
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "startup failed", err)
		return 1
	}
	srv.Run(ctx, stop)
	return 0
}
