package display

import (
	"strings"
	"testing"

	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/testutil"
)

func TestLogRendererSkipsRepeatedFrames(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	r := NewLogRenderer(logger)
	f := MenuFrame(domaingames.SportNBA, Indicators{})

	if err := r.Render(f); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	first := buf.Len()
	if first == 0 || !strings.Contains(buf.String(), "view=menu") {
		t.Fatalf("expected frame log, got %q", buf.String())
	}
	_ = r.Render(f)
	if buf.Len() != first {
		t.Fatalf("expected repeated frame to be skipped")
	}
	_ = r.Render(MenuFrame(domaingames.SportNBA, Indicators{Offline: true}))
	if buf.Len() == first {
		t.Fatalf("expected indicator change to log a new frame")
	}
}

func TestLogRendererRejectsInvalidFrame(t *testing.T) {
	r := NewLogRenderer(nil)
	if err := r.Render(Frame{View: ViewDetail}); err == nil {
		t.Fatalf("expected validation error")
	}
}
