package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("debug", &buf)
	l.Debug("skipping %d rows", 10)
	l.Info("generating %s", "reason")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[DEBUG] skipping 10 rows") {
		t.Errorf("debug line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "[INFO] generating reason") {
		t.Errorf("info line = %q", lines[1])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("error", &buf)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("hidden")
	l.Error("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[ERROR] kept") {
		t.Errorf("error line = %q", lines[0])
	}
}

func TestLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("verbose", &buf)
	l.Debug("hidden")
	l.Info("kept")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") || !strings.Contains(out, "kept") {
		t.Errorf("output = %q", out)
	}
}
