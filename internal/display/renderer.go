package display

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
)

// Renderer draws frames on the panel.
type Renderer interface {
	Render(f Frame) error
}

// LogRenderer writes frames to a structured logger, skipping repeats of the last frame.
type LogRenderer struct {
	logger *slog.Logger

	mu   sync.Mutex
	last string
}

// NewLogRenderer constructs a renderer that logs through logger.
func NewLogRenderer(logger *slog.Logger) *LogRenderer {
	return &LogRenderer{logger: logger}
}

// Render validates f and logs it when it differs from the previous frame.
func (r *LogRenderer) Render(f Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	text := f.Text()
	badges := strings.Join(f.Indicators.Badges(), ",")
	key := string(f.View) + "|" + text + "|" + badges

	r.mu.Lock()
	defer r.mu.Unlock()
	if key == r.last {
		return nil
	}
	r.last = key
	logging.Info(r.logger, "frame",
		logging.FieldView, string(f.View),
		"text", text,
		"indicators", badges,
	)
	return nil
}
