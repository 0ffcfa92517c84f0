package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger defines the logging interface
type Logger interface {
	LogInfo(ctx context.Context, msg string, attrs ...any)
	LogError(ctx context.Context, msg string, err error, attrs ...any)
	LogWarning(ctx context.Context, msg string, attrs ...any)
	WithRequestID(requestID string) Logger
}

// StructuredLogger implements the Logger interface
type StructuredLogger struct {
	*slog.Logger
}

// NewLogger creates a new structured logger writing JSON to stdout at info level
func NewLogger() Logger {
	return New(os.Stdout, "info")
}

// New creates a structured logger writing JSON to w at the given level
func New(w io.Writer, level string) Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	handler := slog.NewJSONHandler(w, opts)
	return &StructuredLogger{
		Logger: slog.New(handler),
	}
}

// ParseLevel maps a config level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds a request ID to the logger context
func (l *StructuredLogger) WithRequestID(requestID string) Logger {
	return &StructuredLogger{
		Logger: l.Logger.With("request_id", requestID),
	}
}

// LogError logs an error with context
func (l *StructuredLogger) LogError(ctx context.Context, msg string, err error, attrs ...any) {
	errText := "<nil>"
	if err != nil {
		errText = err.Error()
	}
	allAttrs := append([]any{"error", errText}, attrs...)
	l.Logger.ErrorContext(ctx, msg, allAttrs...)
}

// LogInfo logs an info message with context
func (l *StructuredLogger) LogInfo(ctx context.Context, msg string, attrs ...any) {
	l.Logger.InfoContext(ctx, msg, attrs...)
}

// LogWarning logs a warning message with context
func (l *StructuredLogger) LogWarning(ctx context.Context, msg string, attrs ...any) {
	l.Logger.WarnContext(ctx, msg, attrs...)
}
