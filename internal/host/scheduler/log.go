package scheduler

import (
	"context"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// cronLogger routes cron's own messages into the zap logger.
type cronLogger struct {
	ctx context.Context //nolint:containedctx // cron.Logger has no context parameter.
}

// newCronLogger names the cron logger and applies its own level, if any.
func newCronLogger(ctx context.Context, level zapcore.LevelEnabler) cronLogger {
	ctx = logger.WithName(ctx, "cron")
	if level != nil {
		ctx = logger.WithLevelOverride(ctx, level)
	}

	return cronLogger{ctx: ctx}
}

// Info logs cron's chatty lifecycle messages at debug level.
func (l cronLogger) Info(msg string, keysAndValues ...any) {
	logger.DebugKV(l.ctx, msg, keysAndValues...)
}

// Error logs cron failures, including recovered handler panics.
func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.ErrorKV(l.ctx, msg, append(keysAndValues, "error", err)...)
}
