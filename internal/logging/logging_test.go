package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Level: "warn", Output: &buf})

	logger.Debug("hidden")
	logger.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, "debug", cfg.Level)

	var buf bytes.Buffer
	cfg.Output = &buf
	Setup(cfg).Debug("now visible")
	assert.True(t, strings.Contains(buf.String(), "now visible"))
}
