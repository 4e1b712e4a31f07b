package scheduler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/host"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p.
func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// bufferContext returns a context whose logger writes to buf at level.
func bufferContext(buf *syncBuffer, level zapcore.Level) context.Context {
	return logger.ToContext(context.Background(), logger.NewWithSink(zapcore.AddSync(buf), level))
}

func TestCronLogger_OwnLevel(t *testing.T) {
	t.Parallel()

	var buf syncBuffer

	ctx := bufferContext(&buf, zapcore.InfoLevel)

	// Louder than the process: cron wakeups become visible.
	newCronLogger(ctx, zapcore.DebugLevel).Info("wake", "now", "07:30")
	// Quieter than the process: only failures get through.
	quiet := newCronLogger(ctx, zapcore.ErrorLevel)
	quiet.Info("schedule")
	quiet.Error(errors.New("boom"), "panic", "job", 1)
	// No override follows the process level.
	newCronLogger(ctx, nil).Info("run")

	out := buf.String()
	require.Contains(t, out, "wake")
	require.Contains(t, out, "cron")
	require.NotContains(t, out, "schedule")
	require.Contains(t, out, "boom")
	require.NotContains(t, out, "run")
}

func TestScheduler_FiringCarriesRegistrationID(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			buf    syncBuffer
			ctx    = bufferContext(&buf, zapcore.InfoLevel)
			s      = New(WithLocation(time.UTC), WithCronLogLevel(zapcore.ErrorLevel))
			handle = host.ActionHandle{Target: "alarm", RequestCode: 1}
		)

		s.Register("alarm", func(ctx context.Context, _ host.Firing) {
			logger.Info(ctx, "Alarm just fired")
		})
		s.Start(ctx)
		defer stop(t, s)

		s.SetOneShot(ctx, domain.ClockRTCWakeup, time.Now().Add(time.Minute), handle)

		pending := s.Pending()
		require.Len(t, pending, 1)

		time.Sleep(time.Minute + time.Second)
		synctest.Wait()

		var fired string

		for line := range strings.SplitSeq(buf.String(), "\n") {
			if strings.Contains(line, "Alarm just fired") {
				fired = line
			}
		}

		require.Contains(t, fired, pending[0].ID.String())
	})
}
