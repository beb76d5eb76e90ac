package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func TestRecorderLogsFramesOnlyAtDebug(t *testing.T) {
	tests := []struct {
		name   string
		level  log.Level
		frames int // "frame" lines expected over the first 10 frames
	}{
		{"info", log.InfoLevel, 0},
		{"warn", log.WarnLevel, 0},
		{"debug", log.DebugLevel, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.NewWithOptions(&buf, log.Options{Level: tt.level})
			table := newTestTable(t)
			rec := NewRecorder(nil, logger, "sim")

			for i := 0; i < 10; i++ {
				rec.Observe(table.Frame(), table.Game)
			}
			if got := strings.Count(buf.String(), "tick="); got != tt.frames {
				t.Errorf("logged %d frames, expected %d", got, tt.frames)
			}
		})
	}
}

func TestRecorderStoresRoundAtInfo(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "pong.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	table := newTestTable(t)
	rec := NewRecorder(store, logger, "sim")

	// The idle left player loses the serve on frame 22.
	for i := 0; i < 22; i++ {
		rec.Observe(table.Frame(), table.Game)
	}
	rec.End()

	rounds, err := store.Rounds(rec.SessionID())
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("stored %d rounds, expected 1", len(rounds))
	}
	if rounds[0].Winner != pong.Right.String() || rounds[0].Tick != 22 {
		t.Errorf("round = %+v, expected right winning on tick 22", rounds[0])
	}
	if strings.Count(buf.String(), "round over") != 1 {
		t.Errorf("log = %q, expected one round over line", buf.String())
	}
	if strings.Contains(buf.String(), "frame tick=") {
		t.Errorf("log = %q, expected no per-frame lines at info", buf.String())
	}
}
