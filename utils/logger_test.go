package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, LevelWarn)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown", "generation", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry passed a warn filter: %q", out)
	}
	for _, want := range []string{"level=warn", "msg=shown", "generation=7", "ts=", "caller="} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("NewLogger() with unknown level returned nil error")
	}
}
