package server

import (
	"io"
	"log/slog"

	"github.com/preston-bernstein/matrix-scoreboard/internal/buttons"
	"github.com/preston-bernstein/matrix-scoreboard/internal/config"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
)

type buttonPanel interface {
	buttons.LevelReader
	io.Closer
}

var openPanel = func(chip string, offsets map[buttons.Button]int) (buttonPanel, error) {
	p, err := buttons.OpenGPIOPanel(chip, offsets)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// buildButtons returns the edge source for the runner and the panel to close on
// shutdown. A board without usable GPIO still runs; it just cannot be navigated.
func buildButtons(cfg config.Config, logger *slog.Logger) (buttons.EdgeReader, io.Closer) {
	if !cfg.Buttons.Enabled {
		logging.Info(logger, "buttons disabled")
		return buttons.Noop{}, nil
	}
	panel, err := openPanel(cfg.Buttons.Chip, cfg.Buttons.Offsets)
	if err != nil {
		logging.Error(logger, "gpio buttons unavailable, continuing without input", err, "chip", cfg.Buttons.Chip)
		return buttons.Noop{}, nil
	}
	return buttons.NewDebouncer(panel, cfg.Timing.Debounce, nil, logger), panel
}
