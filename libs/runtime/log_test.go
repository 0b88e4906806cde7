package runtime

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "dashboard-service", "info", "text").Info("ready")
	if !strings.Contains(buf.String(), "service=dashboard-service") {
		t.Fatalf("expected text output, got %s", buf.String())
	}

	buf.Reset()
	logger := newLogger(&buf, "dashboard-service", "warn", "json")
	logger.Info("dropped")
	logger.Warn("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"service":"dashboard-service"`) {
		t.Fatalf("unexpected json output: %s", out)
	}
}
