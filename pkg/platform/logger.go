// Package platform carries the small ambient pieces shared by the CLI
// and the API server: structured logging and env-backed configuration.
package platform

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger builds the process-wide JSON logger. The level comes from
// PROFITCALC_LOG_LEVEL (debug, info, warn, error), defaulting to info.
// Logs go to stderr so stdout stays clean for report/JSON output.
func InitLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(GetEnv("PROFITCALC_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)
	return logger
}

func logLevel(name string) slog.Level {
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

// LogFatal logs the error and exits. For use in mains only.
func LogFatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
