package controller

import (
	"context"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// Notifier shows short transient notices to the user.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// LogNotifier writes notices to the logger.
type LogNotifier struct{}

// Notify logs the notice at info level.
func (LogNotifier) Notify(ctx context.Context, text string) {
	logger.InfoKV(ctx, "Notice", "text", text)
}
