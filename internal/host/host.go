package host

import (
	"context"
	"fmt"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// ActionHandle identifies a pending registration. Two registrations with the
// same target and request code are the same registration.
type ActionHandle struct {
	// Target names the component that receives the firing.
	Target string
	// RequestCode disambiguates registrations for the same target.
	RequestCode domain.RequestCode
}

// String renders the handle for logs.
func (h ActionHandle) String() string {
	return fmt.Sprintf("%s#%d", h.Target, h.RequestCode)
}

// AlarmService registers triggers with the host. Calls are fire-and-forget.
// Registering an existing handle replaces it; cancelling an unknown handle
// does nothing.
type AlarmService interface {
	SetRepeating(ctx context.Context, clock domain.ClockType, start time.Time, interval time.Duration, handle ActionHandle)
	SetOneShot(ctx context.Context, clock domain.ClockType, at time.Time, handle ActionHandle)
	Cancel(ctx context.Context, handle ActionHandle)
}

// PolicyService exposes the host's do-not-disturb state.
type PolicyService interface {
	IsPolicyAccessGranted(ctx context.Context) bool
	CurrentInterruptionFilter(ctx context.Context) domain.InterruptionFilter
	// RequestPolicyAccess sends the user to wherever access is granted.
	RequestPolicyAccess(ctx context.Context)
}

// Firing is the asynchronous "alarm fired" signal.
type Firing struct {
	// Handle is the registration that fired.
	Handle ActionHandle
	// At is when the host delivered the signal.
	At time.Time
	// Repeating is true when the registration stays active after firing.
	Repeating bool
}

// Handler receives firings for one target.
type Handler func(ctx context.Context, firing Firing)
