// Package logging provides the process-wide structured logger. The
// service runs in containers whose stdout is collected by the platform,
// so everything goes to stdout: human-readable text in dev, JSON
// elsewhere.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Setup configures the global slog logger and returns it.
func Setup(env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if env == "dev" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	defaultLogger = logger
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a config log-level string to a slog level. Unknown
// values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Package-level functions for direct access

func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}

func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}

// logger returns the configured logger, or a console fallback when Setup
// has not run yet (early init paths and tests).
func logger() *slog.Logger {
	if defaultLogger != nil {
		return defaultLogger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
