package logger

import (
	"context"
	"sync"
)

// Entry is a single log entry captured by the test logger.
type Entry struct {
	Level   string
	Message string
	Fields  Fields
}

// TestLogger captures log entries for assertions in tests.
type TestLogger struct {
	mu     sync.Mutex
	shared *[]Entry
	fields Fields
}

// NewTestLogger creates a capturing logger.
func NewTestLogger() *TestLogger {
	entries := make([]Entry, 0)
	return &TestLogger{shared: &entries}
}

// Debug logs a debug-level message.
func (l *TestLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.record("debug", msg, fields)
}

// Info logs an info-level message.
func (l *TestLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.record("info", msg, fields)
}

// Warn logs a warning-level message.
func (l *TestLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.record("warn", msg, fields)
}

// Error logs an error-level message.
func (l *TestLogger) Error(ctx context.Context, msg string, fields Fields) {
	l.record("error", msg, fields)
}

// With returns a logger that adds the given fields to every entry. Derived
// loggers share the parent's captured entries.
func (l *TestLogger) With(fields Fields) Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{shared: l.shared, fields: merged}
}

// Entries returns a copy of all captured entries.
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(*l.shared))
	copy(out, *l.shared)
	return out
}

func (l *TestLogger) record(level, msg string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	*l.shared = append(*l.shared, Entry{Level: level, Message: msg, Fields: merged})
}
