package searchclient

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with search-specific helpers.
// Field names are kept consistent across drivers and commands.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithStrategy tags every record with the strategy's reporting name.
func (l *Logger) WithStrategy(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", name),
	}
}

// LogStart logs the beginning of a search run.
func (l *Logger) LogStart(ctx context.Context, maxExplored int) {
	l.InfoContext(ctx, "search started",
		"max_explored", maxExplored,
	)
}

// LogStatus logs a progress snapshot of a running search.
func (l *Logger) LogStatus(ctx context.Context, explored, frontier int, elapsed time.Duration) {
	l.InfoContext(ctx, "search progress",
		"explored", explored,
		"frontier", frontier,
		"generated", explored+frontier,
		"elapsed", elapsed,
	)
}

// LogResult logs the outcome of a search run.
func (l *Logger) LogResult(ctx context.Context, steps, cost, explored int, elapsed time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "search failed",
			"explored", explored,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "solution found",
		"steps", steps,
		"cost", cost,
		"explored", explored,
		"elapsed", elapsed,
	)
}
