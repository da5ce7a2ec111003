package shared

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger configures the default slog logger. Logs go to stderr: stdout
// carries the rendered document when no output file is given.
func InitLogger(format, level string) *slog.Logger {
	var h slog.Handler
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
