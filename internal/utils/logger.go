// Package utils provides utility functions including logging.
package utils

import (
	"log/slog"
	"os"
)

// Logger is the global structured logger instance.
var Logger *slog.Logger

// InitLogger initializes the structured logger with JSON output.
// Logs go to stderr so the demo walkthrough output on stdout stays clean.
func InitLogger(env, service, level string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	// Use JSON handler for structured logging
	handler := slog.NewJSONHandler(os.Stderr, opts)
	Logger = slog.New(handler)

	// Set as default logger
	slog.SetDefault(Logger)

	Logger.Debug("logger initialized",
		slog.String("level", level),
		slog.String("env", env),
		slog.String("service", service),
	)
}

// parseLevel maps a config level string to a slog level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch level {
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

// Info logs an info level message with optional key-value pairs.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Error logs an error level message with optional key-value pairs.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Debug logs a debug level message with optional key-value pairs.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning level message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
