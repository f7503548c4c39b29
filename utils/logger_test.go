package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown", "generation", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line passed a warn filter: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "generation=3") || !strings.Contains(out, "level=warn") {
		t.Fatalf("missing warn line: %s", out)
	}
	if !strings.Contains(out, "caller=logger_test.go:") {
		t.Fatalf("caller does not point at the logging call: %s", out)
	}
}

func TestNewLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "chatty")

	level.Debug(logger).Log("msg", "debug")
	level.Info(logger).Log("msg", "info")

	if out := buf.String(); strings.Contains(out, "msg=debug") || !strings.Contains(out, "msg=info") {
		t.Fatalf("unexpected output: %s", out)
	}
}
