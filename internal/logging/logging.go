// Package logging configures slog for the pathwell CLI. Output is plain
// text on stderr; --debug lowers the level to debug.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output is where log lines are written. Defaults to stderr.
	Output io.Writer
}

// DefaultConfig returns the defaults used when no flags are set.
func DefaultConfig() Config {
	return Config{Level: "warn"}
}

// DebugConfig returns the configuration enabled by --debug.
func DebugConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	return cfg
}

// Setup builds a logger from cfg.
func Setup(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})
	return slog.New(handler)
}

// SetupDefault builds a logger from cfg and installs it as the process-wide
// default, so library packages logging via slog pick it up.
func SetupDefault(cfg Config) *slog.Logger {
	logger := Setup(cfg)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a string level to slog.Level. Unknown levels fall back
// to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
