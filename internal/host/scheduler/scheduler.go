package scheduler

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/zapcore"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/host"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// Kind tells repeating and one-shot registrations apart.
type Kind string

const (
	// KindRepeating stays registered after each firing.
	KindRepeating Kind = "repeating"
	// KindOneShot is forgotten after it fires.
	KindOneShot Kind = "one-shot"
)

// Registration is a snapshot of one pending trigger.
type Registration struct {
	// ID correlates log lines of the same registration.
	ID uuid.UUID
	// Handle identifies the registration on the host side.
	Handle host.ActionHandle
	// Clock is the host clock type the trigger was set against.
	Clock domain.ClockType
	// Kind is repeating or one-shot.
	Kind Kind
	// Start is the first trigger time.
	Start time.Time
	// Interval is the repeat interval; zero for one-shot registrations.
	Interval time.Duration
	// Next is the next trigger time computed at snapshot time.
	Next time.Time
}

// entry binds a registration to its cron entry.
type entry struct {
	reg      Registration
	schedule cron.Schedule
	// id is zero for one-shots delivered without cron.
	id cron.EntryID
}

// Scheduler implements host.AlarmService on top of cron.
type Scheduler struct {
	// cron drives the timers.
	cron *cron.Cron
	// now is the clock used for firing timestamps and immediate delivery.
	now func() time.Time
	// location is the time zone cron evaluates schedules in.
	location *time.Location
	// cronLevel overrides the level of cron's own messages when set.
	cronLevel zapcore.LevelEnabler

	// mu protects everything below.
	mu sync.Mutex
	// baseCtx carries the logger into firings.
	baseCtx context.Context //nolint:containedctx // Firings run outside any request.
	// entries holds pending registrations by handle.
	entries map[host.ActionHandle]*entry
	// handlers receive firings by target name.
	handlers map[string]host.Handler
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the time source used for firing timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone schedules are evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithCronLogLevel gives cron's own messages a level of their own.
func WithCronLogLevel(level zapcore.Level) Option {
	return func(s *Scheduler) {
		s.cronLevel = level
	}
}

// New creates a stopped scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		now:      time.Now,
		location: time.Local,
		baseCtx:  logger.WithName(context.Background(), "scheduler"),
		entries:  make(map[host.ActionHandle]*entry),
		handlers: make(map[string]host.Handler),
	}

	for _, opt := range opts {
		opt(s)
	}

	cronLog := newCronLogger(s.baseCtx, s.cronLevel)
	s.cron = cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog)),
	)

	return s
}

// Register binds the handler that receives firings for target.
func (s *Scheduler) Register(target string, handler host.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers[target] = handler
}

// Start begins delivering firings. ctx supplies the logger for firings.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.baseCtx = logger.WithName(ctx, "scheduler")
	s.mu.Unlock()

	s.cron.Start()
}

// Stop halts the timers and waits for running handlers or ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetRepeating registers a trigger at start repeating every interval.
func (s *Scheduler) SetRepeating(
	ctx context.Context,
	clock domain.ClockType,
	start time.Time,
	interval time.Duration,
	handle host.ActionHandle,
) {
	if interval <= 0 {
		logger.WarnKV(ctx, "Ignoring repeating alarm without interval", "handle", handle.String())
		return
	}

	reg := Registration{
		ID:       uuid.New(),
		Handle:   handle,
		Clock:    clock,
		Kind:     KindRepeating,
		Start:    start,
		Interval: interval,
	}

	s.replace(ctx, reg, anchored{start: start, interval: interval}, false)
}

// SetOneShot registers a single trigger at at. A time that is not in the
// future is delivered right away.
func (s *Scheduler) SetOneShot(ctx context.Context, clock domain.ClockType, at time.Time, handle host.ActionHandle) {
	reg := Registration{
		ID:     uuid.New(),
		Handle: handle,
		Clock:  clock,
		Kind:   KindOneShot,
		Start:  at,
	}

	s.replace(ctx, reg, once{at: at}, !at.After(s.now()))
}

// Cancel removes the registration for handle if there is one.
func (s *Scheduler) Cancel(ctx context.Context, handle host.ActionHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[handle]
	if !ok {
		logger.DebugKV(ctx, "Nothing registered to cancel", "handle", handle.String())
		return
	}

	s.drop(e)
	logger.InfoKV(ctx, "Alarm registration canceled", "handle", handle.String(), "registration_id", e.reg.ID)
}

// Pending returns the registrations ordered by next trigger time.
func (s *Scheduler) Pending() []Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	result := make([]Registration, 0, len(s.entries))

	for _, e := range s.entries {
		reg := e.reg
		reg.Next = e.schedule.Next(now)
		result = append(result, reg)
	}

	slices.SortFunc(result, func(a, b Registration) int {
		if c := a.Next.Compare(b.Next); c != 0 {
			return c
		}

		return int(a.Handle.RequestCode - b.Handle.RequestCode)
	})

	return result
}

// replace installs reg, dropping any registration with the same handle.
func (s *Scheduler) replace(ctx context.Context, reg Registration, schedule cron.Schedule, immediate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[reg.Handle]; ok {
		s.drop(old)
		logger.DebugKV(ctx, "Replacing alarm registration", "handle", reg.Handle.String(), "registration_id", old.reg.ID)
	}

	e := &entry{
		reg:      reg,
		schedule: schedule,
	}

	s.entries[reg.Handle] = e

	logger.InfoKV(
		ctx,
		"Alarm registered",
		"handle", reg.Handle.String(),
		"kind", reg.Kind,
		"clock", reg.Clock.String(),
		"start", reg.Start.Format(time.RFC3339),
		"interval", reg.Interval.String(),
		"registration_id", reg.ID,
	)

	if immediate {
		go s.fire(e)
		return
	}

	e.id = s.cron.Schedule(schedule, cron.FuncJob(func() { s.fire(e) }))
}

// drop forgets e. Callers hold mu.
func (s *Scheduler) drop(e *entry) {
	if e.id != 0 {
		s.cron.Remove(e.id)
	}

	delete(s.entries, e.reg.Handle)
}

// fire delivers one firing of e unless it was replaced or canceled meanwhile.
func (s *Scheduler) fire(e *entry) {
	s.mu.Lock()

	if current, ok := s.entries[e.reg.Handle]; !ok || current != e {
		s.mu.Unlock()
		return
	}

	if e.reg.Kind == KindOneShot {
		s.drop(e)
	}

	var (
		handler = s.handlers[e.reg.Handle.Target]
		ctx     = logger.WithKV(s.baseCtx, "registration_id", e.reg.ID.String())
	)

	s.mu.Unlock()

	firing := host.Firing{
		Handle:    e.reg.Handle,
		At:        s.now(),
		Repeating: e.reg.Kind == KindRepeating,
	}

	if handler == nil {
		logger.WarnKV(ctx, "No receiver for alarm target", "handle", e.reg.Handle.String())
		return
	}

	handler(ctx, firing)
}
