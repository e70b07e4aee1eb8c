package verify

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with verify-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", string(op)),
	}
}

// LogCase logs the outcome of a single case. The op is expected on the
// logger already, see WithOp.
func (l *Logger) LogCase(ctx context.Context, c Case, err error) {
	if err != nil {
		l.ErrorContext(ctx, "case failed",
			"size", c.Size,
			"dst_offset", c.DstOffset,
			"src_offset", c.SrcOffset,
			"delta", c.Delta,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "case passed",
			"size", c.Size,
			"dst_offset", c.DstOffset,
			"src_offset", c.SrcOffset,
			"delta", c.Delta,
		)
	}
}

// LogSweep logs the end of a sweep.
func (l *Logger) LogSweep(ctx context.Context, r *Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "sweep completed",
		"path", r.Path,
		"word_size", r.WordSize,
		"cases", r.Cases,
		"bytes", r.Bytes,
		"digest", r.Digest,
		"duration", r.Duration,
	)
}
