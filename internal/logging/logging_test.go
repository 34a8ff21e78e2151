package logging

import (
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger := NewWithWriter(&buf, "warn")

	logger.Debug("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestUnknownLevelFallsBack(t *testing.T) {
	var buf strings.Builder
	logger := NewWithWriter(&buf, "chatty")

	logger.Info("info message")
	logger.Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "info message") {
		t.Errorf("info should be filtered at the warn fallback level: %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("warn message missing: %q", out)
	}
}
