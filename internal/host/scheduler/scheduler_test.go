package scheduler

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/host"
)

// recorder collects firings delivered to a handler.
type recorder struct {
	mu      sync.Mutex
	firings []host.Firing
}

// handle stores the firing.
func (r *recorder) handle(_ context.Context, f host.Firing) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.firings = append(r.firings, f)
}

// all returns a copy of the recorded firings.
func (r *recorder) all() []host.Firing {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]host.Firing(nil), r.firings...)
}

// stop shuts the scheduler down inside a bubble.
func stop(t *testing.T, s *Scheduler) {
	t.Helper()
	require.NoError(t, s.Stop(context.Background()))
}

// TestScheduler_OneShotFiresOnce checks delivery time and that the registration is forgotten.
func TestScheduler_OneShotFiresOnce(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			ctx    = context.Background()
			rec    = new(recorder)
			s      = New(WithLocation(time.UTC))
			handle = host.ActionHandle{Target: "alarm", RequestCode: 4}
			at     = time.Now().Add(domain.SnoozeDelay)
		)

		s.Register("alarm", rec.handle)
		s.Start(ctx)
		s.SetOneShot(ctx, domain.ClockRTCWakeup, at, handle)

		require.Len(t, s.Pending(), 1)

		time.Sleep(domain.SnoozeDelay + time.Second)
		synctest.Wait()

		firings := rec.all()
		require.Len(t, firings, 1)
		require.Equal(t, handle, firings[0].Handle)
		require.False(t, firings[0].Repeating)
		require.False(t, firings[0].At.Before(at))
		require.Empty(t, s.Pending())

		time.Sleep(time.Hour)
		synctest.Wait()
		require.Len(t, rec.all(), 1)

		stop(t, s)
	})
}

// TestScheduler_RepeatingKeepsFiring checks a repeating registration survives its firings.
func TestScheduler_RepeatingKeepsFiring(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			ctx    = context.Background()
			rec    = new(recorder)
			s      = New(WithLocation(time.UTC))
			handle = host.ActionHandle{Target: "alarm", RequestCode: 0}
		)

		s.Register("alarm", rec.handle)
		s.Start(ctx)
		s.SetRepeating(ctx, domain.ClockRTC, time.Now().Add(time.Hour), domain.DailyInterval, handle)

		time.Sleep(time.Hour + 2*domain.DailyInterval + time.Minute)
		synctest.Wait()

		firings := rec.all()
		require.Len(t, firings, 3)

		for _, f := range firings {
			require.True(t, f.Repeating)
			require.Equal(t, handle, f.Handle)
		}

		require.Len(t, s.Pending(), 1)

		stop(t, s)
	})
}

// TestScheduler_CancelAndReplace checks update-current and silent cancellation.
func TestScheduler_CancelAndReplace(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			ctx    = context.Background()
			rec    = new(recorder)
			s      = New(WithLocation(time.UTC))
			handle = host.ActionHandle{Target: "alarm", RequestCode: 1}
			first  = time.Now().Add(time.Hour)
			second = time.Now().Add(2 * time.Hour)
		)

		s.Register("alarm", rec.handle)
		s.Start(ctx)

		// Same handle twice: the second registration replaces the first.
		s.SetRepeating(ctx, domain.ClockRTC, first, domain.DailyInterval, handle)
		s.SetRepeating(ctx, domain.ClockRTC, second, domain.DailyInterval, handle)

		pending := s.Pending()
		require.Len(t, pending, 1)
		require.Equal(t, second, pending[0].Start)

		// Unknown handles are ignored.
		s.Cancel(ctx, host.ActionHandle{Target: "alarm", RequestCode: 99})
		require.Len(t, s.Pending(), 1)

		s.Cancel(ctx, handle)
		require.Empty(t, s.Pending())

		time.Sleep(3 * time.Hour)
		synctest.Wait()
		require.Empty(t, rec.all())

		stop(t, s)
	})
}

// TestScheduler_PastOneShotIsImmediate checks a past one-shot is delivered at once.
func TestScheduler_PastOneShotIsImmediate(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			ctx = context.Background()
			rec = new(recorder)
			s   = New()
		)

		s.Register("alarm", rec.handle)
		s.SetOneShot(ctx, domain.ClockRTCWakeup, time.Now().Add(-time.Minute), host.ActionHandle{Target: "alarm"})
		synctest.Wait()

		require.Len(t, rec.all(), 1)
		require.Empty(t, s.Pending())
	})
}

// TestScheduler_PendingOrder checks snapshots are sorted by next trigger.
func TestScheduler_PendingOrder(t *testing.T) {
	t.Parallel()

	var (
		ctx  = context.Background()
		now  = time.Date(2026, time.October, 17, 6, 0, 0, 0, time.UTC)
		s    = New(WithClock(func() time.Time { return now }), WithLocation(time.UTC))
		late = now.Add(3 * time.Hour)
	)

	s.SetRepeating(ctx, domain.ClockRTC, late, domain.DailyInterval, host.ActionHandle{Target: "alarm", RequestCode: 0})
	s.SetOneShot(ctx, domain.ClockRTCWakeup, now.Add(time.Hour), host.ActionHandle{Target: "alarm", RequestCode: 1})
	s.SetRepeating(ctx, domain.ClockRTC, now, 0, host.ActionHandle{Target: "alarm", RequestCode: 2})

	pending := s.Pending()
	require.Len(t, pending, 2)
	require.Equal(t, domain.RequestCode(1), pending[0].Handle.RequestCode)
	require.Equal(t, KindOneShot, pending[0].Kind)
	require.Equal(t, late, pending[1].Next)
	require.NotEqual(t, pending[0].ID, pending[1].ID)
}
