package bot

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Log output formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// NewLogger creates the root logger described by the configuration.
// The text format writes coloured, human-readable lines for local use.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)

	if strings.EqualFold(cfg.LogFormat, LogFormatText) {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseLogLevel converts a level name to slog.Level, defaulting to info.
func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
