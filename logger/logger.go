package logger

import "context"

// Fields holds structured log fields.
type Fields map[string]interface{}

// Logger is the structured logging interface threaded through the pipeline.
type Logger interface {
	// Debug logs a debug-level message with optional fields.
	Debug(ctx context.Context, msg string, fields Fields)

	// Info logs an info-level message with optional fields.
	Info(ctx context.Context, msg string, fields Fields)

	// Warn logs a warning-level message with optional fields.
	Warn(ctx context.Context, msg string, fields Fields)

	// Error logs an error-level message with optional fields.
	Error(ctx context.Context, msg string, fields Fields)

	// With returns a logger that adds the given fields to every entry.
	With(fields Fields) Logger
}
