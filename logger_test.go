package slideconv

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Fatalf("default logger enabled for %v", level)
		}
	}
}

func TestSetLoggerReportsRejection(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if err := ARGB2RGBA(BytesBuffer(make([]byte, 5), 4)); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "argb2rgba rejected") {
		t.Fatalf("missing log record: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil) did not restore silence")
	}
}
