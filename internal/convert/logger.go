package convert

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Accepted values for the log format and level settings.
var (
	LogFormats = []string{"text", "json"}
	LogLevels  = []string{"debug", "info", "warn", "error"}
)

// NewLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// ValidateLogSettings normalizes and checks the log level and format.
func ValidateLogSettings(level, format string) (string, string, error) {
	level = strings.ToLower(level)
	format = strings.ToLower(format)

	if !slices.Contains(LogFormats, format) {
		return "", "", errors.New("invalid log-format: must be 'text' or 'json'")
	}

	if !slices.Contains(LogLevels, level) {
		return "", "", errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return level, format, nil
}
