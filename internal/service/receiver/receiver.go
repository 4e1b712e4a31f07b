// Package receiver handles the "alarm fired" signal delivered by the host.
package receiver

import (
	"context"
	"time"

	"github.com/oshokin/alarm-clock/internal/host"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/controller"
)

// Snoozer is the part of the controller the receiver needs.
type Snoozer interface {
	Snooze(ctx context.Context, firedAt time.Time) controller.Outcome
}

// Receiver logs each firing and schedules the follow-up snooze.
type Receiver struct {
	snoozer Snoozer
}

// New creates a receiver bound to the controller.
func New(snoozer Snoozer) *Receiver {
	return &Receiver{
		snoozer: snoozer,
	}
}

// OnFired is the host.Handler for the controller's target.
func (r *Receiver) OnFired(ctx context.Context, firing host.Firing) {
	ctx = logger.WithName(ctx, "alarm-bell")

	logger.InfoKV(
		ctx,
		"Alarm just fired",
		"handle", firing.Handle.String(),
		"repeating", firing.Repeating,
		"fired_at", firing.At.Format(time.RFC3339),
	)

	r.snoozer.Snooze(ctx, firing.At)
}

// Handler returns OnFired as a host.Handler.
func (r *Receiver) Handler() host.Handler {
	return r.OnFired
}
