package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/host"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// DefaultTarget names the receiver alarms are registered for.
const DefaultTarget = "alarm-bell"

// Notices shown after each operation.
const (
	NoticeSet          = "Alarm is set"
	NoticeCustomSet    = "Custom alarm is set"
	NoticeCanceled     = "Alarm is canceled"
	NoticeSnoozeSet    = "Snooze alarm is set"
	NoticeDoNotDisturb = "Do Not Disturb mode is enabled. Alarm will not ring."
)

// Status is the result kind of an operation.
type Status string

const (
	// StatusScheduled means a registration was made and is tracked.
	StatusScheduled Status = "scheduled"
	// StatusSuppressed means do-not-disturb blocked the registration.
	StatusSuppressed Status = "suppressed"
	// StatusCanceled means a registration was canceled.
	StatusCanceled Status = "canceled"
	// StatusNoAlarm means there was nothing to act on.
	StatusNoAlarm Status = "no_alarm"
)

// ErrInvalidInterval is returned for a non-positive repeat interval.
var ErrInvalidInterval = errors.New("repeat interval must be positive")

// Outcome describes what an operation did.
type Outcome struct {
	// Status is the result kind.
	Status Status
	// Alarm is the tracked alarm after the operation, nil when none.
	Alarm *domain.ScheduledAlarm
	// RequestCode is the code the operation used.
	RequestCode domain.RequestCode
	// Notice is the transient message shown to the user, if any.
	Notice string
	// Display is the status line after the operation.
	Display string
}

// Controller owns the request-code counter and the tracked alarm.
type Controller struct {
	// alarms is the host alarm service registrations go to.
	alarms host.AlarmService
	// policy is queried before every regular registration.
	policy host.PolicyService
	// notifier shows transient notices.
	notifier Notifier
	// target names the receiver in every action handle.
	target string
	// now is the wall clock.
	now func() time.Time
	// location is the time zone picked clock times are read in.
	location *time.Location

	// mu serializes operations.
	mu sync.Mutex
	// nextCode is the next request code to hand out.
	nextCode domain.RequestCode
	// current is the tracked alarm or nil.
	current *domain.ScheduledAlarm
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier replaces the log notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the time zone picked times are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithTarget sets the receiver name used in action handles.
func WithTarget(target string) Option {
	return func(c *Controller) {
		if target != "" {
			c.target = target
		}
	}
}

// New creates a controller with no tracked alarm and the counter at zero.
func New(alarms host.AlarmService, policy host.PolicyService, opts ...Option) *Controller {
	c := &Controller{
		alarms:   alarms,
		policy:   policy,
		notifier: LogNotifier{},
		target:   DefaultTarget,
		now:      time.Now,
		location: time.Local,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Target returns the receiver name firings are addressed to.
func (c *Controller) Target() string {
	return c.target
}

// CheckPolicyAccess asks the host for policy access when it is missing.
func (c *Controller) CheckPolicyAccess(ctx context.Context) bool {
	if c.policy.IsPolicyAccessGranted(ctx) {
		return true
	}

	c.policy.RequestPolicyAccess(ctx)

	return false
}

// Schedule registers a daily alarm for today's date at clock.
func (c *Controller) Schedule(ctx context.Context, clock domain.ClockTime, actor *domain.Actor) (Outcome, error) {
	return c.schedule(ctx, clock, domain.DailyInterval, actor, NoticeSet)
}

// ScheduleCustom registers an alarm for today's date at clock repeating every interval.
func (c *Controller) ScheduleCustom(
	ctx context.Context,
	clock domain.ClockTime,
	interval time.Duration,
	actor *domain.Actor,
) (Outcome, error) {
	if interval <= 0 {
		return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	return c.schedule(ctx, clock, interval, actor, NoticeCustomSet)
}

// Edit returns the hour and minute of the tracked alarm for the time input.
// It never touches the host.
func (c *Controller) Edit(ctx context.Context) (domain.ClockTime, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		logger.Debug(ctx, "Edit requested without a tracked alarm")
		return domain.ClockTime{}, false
	}

	return c.current.Clock(), true
}

// Cancel cancels the tracked alarm under the code it was registered with.
func (c *Controller) Cancel(ctx context.Context, actor *domain.Actor) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Outcome{
			Status:  StatusNoAlarm,
			Display: domain.FormatDisplay(nil),
		}
	}

	code := c.current.RequestCode
	c.alarms.Cancel(ctx, c.handle(code))
	c.current = nil

	logger.InfoKV(ctx, "Alarm canceled", "request_code", code, "actor", actor.String())
	c.notifier.Notify(ctx, NoticeCanceled)

	return Outcome{
		Status:      StatusCanceled,
		RequestCode: code,
		Notice:      NoticeCanceled,
		Display:     domain.FormatDisplay(nil),
	}
}

// CancelCode cancels whatever is registered under code. It always reports
// success; tracking is cleared only when code belongs to the tracked alarm.
func (c *Controller) CancelCode(ctx context.Context, code domain.RequestCode) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.alarms.Cancel(ctx, c.handle(code))

	if c.current != nil && c.current.RequestCode == code {
		c.current = nil
	}

	c.notifier.Notify(ctx, NoticeCanceled)

	return Outcome{
		Status:      StatusCanceled,
		Alarm:       c.current.Clone(),
		RequestCode: code,
		Notice:      NoticeCanceled,
		Display:     domain.FormatDisplay(c.current),
	}
}

// Snooze registers a one-shot alarm ten minutes after firedAt under a fresh
// code. The tracked alarm is left alone.
func (c *Controller) Snooze(ctx context.Context, firedAt time.Time) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	code := c.consumeCode()
	at := domain.SnoozeAt(firedAt)

	c.alarms.SetOneShot(ctx, domain.ClockRTCWakeup, at, c.handle(code))

	logger.InfoKV(ctx, "Snooze alarm set", "request_code", code, "trigger_at", at.Format(time.RFC3339))
	c.notifier.Notify(ctx, NoticeSnoozeSet)

	return Outcome{
		Status:      StatusScheduled,
		Alarm:       c.current.Clone(),
		RequestCode: code,
		Notice:      NoticeSnoozeSet,
		Display:     domain.FormatDisplay(c.current),
	}
}

// Current returns a copy of the tracked alarm or nil.
func (c *Controller) Current() *domain.ScheduledAlarm {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current.Clone()
}

// Display returns the status line.
func (c *Controller) Display() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return domain.FormatDisplay(c.current)
}

// NextRequestCode returns the code the next registration will use.
func (c *Controller) NextRequestCode() domain.RequestCode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.nextCode
}

// schedule is the shared body of Schedule and ScheduleCustom.
func (c *Controller) schedule(
	ctx context.Context,
	clock domain.ClockTime,
	interval time.Duration,
	actor *domain.Actor,
	notice string,
) (Outcome, error) {
	if err := clock.Validate(); err != nil {
		return Outcome{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		code      = c.consumeCode()
		triggerAt = domain.TodayAt(c.now().In(c.location), clock)
	)

	if filter := c.policy.CurrentInterruptionFilter(ctx); filter.BlocksAll() {
		logger.WarnKV(ctx, "Alarm suppressed by interruption filter", "request_code", code, "filter", filter.String())
		c.notifier.Notify(ctx, NoticeDoNotDisturb)

		return Outcome{
			Status:      StatusSuppressed,
			Alarm:       c.current.Clone(),
			RequestCode: code,
			Notice:      NoticeDoNotDisturb,
			Display:     domain.FormatDisplay(c.current),
		}, nil
	}

	// The previous registration goes first so an edit never leaves two alarms behind.
	if c.current != nil {
		c.alarms.Cancel(ctx, c.handle(c.current.RequestCode))
		logger.DebugKV(ctx, "Replaced alarm canceled", "request_code", c.current.RequestCode)
	}

	c.alarms.SetRepeating(ctx, domain.ClockRTC, triggerAt, interval, c.handle(code))

	c.current = &domain.ScheduledAlarm{
		TriggerAt:   triggerAt,
		RequestCode: code,
		Interval:    interval,
		SetBy:       actor.Clone(),
	}

	logger.InfoKV(
		ctx,
		"Alarm scheduled",
		"request_code", code,
		"trigger_at", triggerAt.Format(time.RFC3339),
		"interval", interval.String(),
		"actor", actor.String(),
	)
	c.notifier.Notify(ctx, notice)

	return Outcome{
		Status:      StatusScheduled,
		Alarm:       c.current.Clone(),
		RequestCode: code,
		Notice:      notice,
		Display:     domain.FormatDisplay(c.current),
	}, nil
}

// consumeCode hands out the next request code. Callers hold mu.
func (c *Controller) consumeCode() domain.RequestCode {
	code := c.nextCode
	c.nextCode++

	return code
}

// handle builds the action handle for code.
func (c *Controller) handle(code domain.RequestCode) host.ActionHandle {
	return host.ActionHandle{
		Target:      c.target,
		RequestCode: code,
	}
}
