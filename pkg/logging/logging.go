// Package logging configures structured logging for dailypick binaries.
//
// Usage:
//
//	logging.Setup()                                  // from LOG_LEVEL / LOG_FORMAT
//	logging.SetupWithOptions(slog.LevelDebug, "text") // explicit override
//
// Environment variables:
//
//	LOG_LEVEL:  debug, info, warn, error (default: info)
//	LOG_FORMAT: text (colored, via tint) or json (default: text)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures logging from the LOG_LEVEL and LOG_FORMAT env vars.
func Setup() {
	SetupWithOptions(LevelFromEnv(), os.Getenv("LOG_FORMAT"))
}

// SetupWithOptions installs a default logger at level. format "json" writes
// JSON lines to stdout for log shippers; anything else writes colored text
// to stderr.
func SetupWithOptions(level slog.Level, format string) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, os.Stdout, level, format)))
}

// NewHandler builds the handler SetupWithOptions installs. text is the
// destination for colored output and jsonOut for JSON output.
func NewHandler(text, jsonOut io.Writer, level slog.Level, format string) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(jsonOut, &slog.HandlerOptions{
			Level: level,
		})
	}
	return tint.NewHandler(text, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}

// LevelFromEnv parses LOG_LEVEL, defaulting to INFO.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
