package badger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogLogger_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), slog.LevelWarn)

	l.Infof("replaying value log %d\n", 3)
	l.Debugf("compaction")
	if buf.Len() != 0 {
		t.Fatalf("below min level should be dropped, got %q", buf.String())
	}

	l.Warningf("value log %d is corrupt\n", 7)
	l.Errorf("disk full")

	out := buf.String()
	if !strings.Contains(out, "value log 7 is corrupt") || !strings.Contains(out, "engine=badger") {
		t.Errorf("warning not forwarded: %q", out)
	}
	if !strings.Contains(out, "disk full") {
		t.Errorf("error not forwarded: %q", out)
	}
}
