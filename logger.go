package hwbits

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hwbits-specific context. The core operators
// never log (they are pure and synchronous); the snapshot and blobstore
// paths use this for structured diagnostics.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is
// nil, a text handler to stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithRegister tags the logger with a register name.
func (l *Logger) WithRegister(name string) *Logger {
	return &Logger{Logger: l.Logger.With("register", name)}
}

// WithSnapshot tags the logger with a snapshot name.
func (l *Logger) WithSnapshot(name string) *Logger {
	return &Logger{Logger: l.Logger.With("snapshot", name)}
}
