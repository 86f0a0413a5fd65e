package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" warning ", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"loud", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	if ParseFormatter("json") != log.JSONFormatter {
		t.Error("json")
	}
	if ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Error("logfmt")
	}
	if ParseFormatter("whatever") != log.TextFormatter {
		t.Error("default")
	}
}

func TestFromConfigFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := FromConfig(&buf, "warn", "logfmt")
	logger.Debug("hidden", "path", "/tmp/x")
	logger.Warn("shown", "path", "/tmp/y")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "/tmp/y") {
		t.Errorf("warn line missing: %q", out)
	}
}
