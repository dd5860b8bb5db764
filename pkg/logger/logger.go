package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide structured logger. Init must run before first use.
var Log *slog.Logger

// Init configures JSON logging to stdout. The level comes from LOG_LEVEL
// (debug, info, warn, error) and defaults to info.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	Log = slog.New(handler).With("service", "cv-platform")
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
