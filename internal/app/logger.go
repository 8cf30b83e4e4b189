package app

import (
	"log/slog"
	"os"
	"strings"

	"zapshift/internal/logx"
)

// NewLogger builds the process-wide JSON logger. LOG_LEVEL picks the
// minimum level, defaulting to info.
func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	return logx.NewSlogAdapter(base)
}

func logLevel() slog.Level {
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
