package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"panic":  zapcore.PanicLevel,
		"fatal":  zapcore.FatalLevel,
		"dpanic": zapcore.DPanicLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestSetLevelFromString rejects unknown names and ignores empty input.
func TestSetLevelFromString(t *testing.T) {
	t.Parallel()

	require.NoError(t, SetLevelFromString(""))
	require.ErrorIs(t, SetLevelFromString("loud"), ErrUnknownLevel)
}

// TestContextLogger checks that scoped loggers travel with the context.
func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewWithSink(zapcore.AddSync(&buf), zapcore.DebugLevel)

	ctx := ToContext(context.Background(), l)
	ctx = WithName(ctx, "controller")
	ctx = WithKV(ctx, "request_code", 7)

	InfoKV(ctx, "Alarm is set", "hour", 7)

	out := buf.String()
	require.Contains(t, out, "controller")
	require.Contains(t, out, "Alarm is set")
	require.Contains(t, out, "request_code")

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithLevel ensures the option filters entries below the requested level.
func TestWithLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewWithSink(zapcore.AddSync(&buf), zapcore.DebugLevel, WithLevel(zapcore.WarnLevel))
	ctx := ToContext(context.Background(), l)

	Info(ctx, "hidden")
	Warn(ctx, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

// TestWithLevelOverride checks that a scoped level can both hide and reveal entries.
func TestWithLevelOverride(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewWithSink(zapcore.AddSync(&buf), zapcore.InfoLevel)
	base := ToContext(context.Background(), l)

	quiet := WithLevelOverride(base, zapcore.ErrorLevel)
	Warn(quiet, "cron warning")

	loud := WithLevelOverride(WithKV(base, "component", "cron"), zapcore.DebugLevel)
	Debug(loud, "cron wakeup")

	Debug(base, "process debug")

	out := buf.String()
	require.NotContains(t, out, "cron warning")
	require.Contains(t, out, "cron wakeup")
	require.Contains(t, out, "component")
	require.NotContains(t, out, "process debug")
}
