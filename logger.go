package wordbloom

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with wordbloom-specific helpers.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithSource adds a dictionary source field to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogLoad logs the outcome of loading one dictionary.
func (l *Logger) LogLoad(ctx context.Context, words, skipped uint64, elapsed time.Duration, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "dictionary load failed",
			"words", words,
			"skipped", skipped,
			"error", err,
		)
	case skipped > 0:
		l.WarnContext(ctx, "dictionary loaded with skipped lines",
			"words", words,
			"skipped", skipped,
			"elapsed", elapsed,
		)
	default:
		l.InfoContext(ctx, "dictionary loaded",
			"words", words,
			"elapsed", elapsed,
		)
	}
}

// LogSkippedLine logs a line that could not be inserted.
func (l *Logger) LogSkippedLine(ctx context.Context, line uint64, err error) {
	l.WarnContext(ctx, "skipping dictionary line",
		"line", line,
		"error", err,
	)
}

// LogQuery logs a membership query.
func (l *Logger) LogQuery(ctx context.Context, word string, possible bool) {
	l.DebugContext(ctx, "query completed",
		"word", word,
		"possible", possible,
	)
}

// LogFilter logs the parameters and fill of a built filter.
func (l *Logger) LogFilter(ctx context.Context, s Stats) {
	l.InfoContext(ctx, "filter ready",
		"size", s.Size(),
		"hash_count", s.HashCount(),
		"bits_set", s.BitsSet(),
		"estimated_fpr", s.EstimatedFalsePositiveRate(),
	)
}
