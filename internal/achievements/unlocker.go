package achievements

import (
	"context"
	"log/slog"
	"time"
)

// Unlocker marks achievements as unlocked in the achievements service.
// Implementations must be idempotent: unlocking twice is not an error.
type Unlocker interface {
	Unlock(ctx context.Context, id string) error
}

// UnlockerFunc adapts a function to the Unlocker interface.
type UnlockerFunc func(ctx context.Context, id string) error

func (f UnlockerFunc) Unlock(ctx context.Context, id string) error {
	return f(ctx, id)
}

// LoggingUnlocker is a decorator that logs every unlock call.
type LoggingUnlocker struct {
	inner  Unlocker
	logger *slog.Logger
}

// WithLogging wraps an Unlocker with structured logging.
func WithLogging(u Unlocker, logger *slog.Logger) Unlocker {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingUnlocker{inner: u, logger: logger}
}

func (l *LoggingUnlocker) Unlock(ctx context.Context, id string) error {
	start := time.Now()
	err := l.inner.Unlock(ctx, id)
	if err != nil {
		l.logger.WarnContext(ctx, "unlock achievement failed",
			"achievement", id, "error", err)
		return err
	}
	l.logger.DebugContext(ctx, "achievement unlocked",
		"achievement", id, "latency_ms", time.Since(start).Milliseconds())
	return nil
}
