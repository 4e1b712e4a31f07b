package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestTodayAt checks every valid hour/minute lands on the same date with zero seconds.
func TestTodayAt(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+6", 6*60*60)
	now := time.Date(2026, time.October, 17, 13, 45, 59, 123456789, loc)

	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			got := TodayAt(now, ClockTime{Hour: hour, Minute: minute})

			y, m, d := got.Date()
			require.Equal(t, 2026, y)
			require.Equal(t, time.October, m)
			require.Equal(t, 17, d)
			require.Equal(t, hour, got.Hour())
			require.Equal(t, minute, got.Minute())
			require.Zero(t, got.Second())
			require.Zero(t, got.Nanosecond())
			require.Equal(t, loc, got.Location())
		}
	}
}

// TestSnoozeAt verifies the snooze offset is exactly ten minutes.
func TestSnoozeAt(t *testing.T) {
	t.Parallel()

	fired := time.UnixMilli(1_760_000_000_123)
	require.Equal(t, int64(600_000), SnoozeAt(fired).UnixMilli()-fired.UnixMilli())
}

// TestParseClock covers accepted and rejected inputs.
func TestParseClock(t *testing.T) {
	t.Parallel()

	got, err := ParseClock(" 07:30 ")
	require.NoError(t, err)
	require.Equal(t, ClockTime{Hour: 7, Minute: 30}, got)
	require.Equal(t, "07:30", got.String())

	got, err = ParseClock("0:05")
	require.NoError(t, err)
	require.Equal(t, ClockTime{Hour: 0, Minute: 5}, got)

	_, err = ParseClock("24:00")
	require.ErrorIs(t, err, ErrInvalidClock)

	_, err = ParseClock("12:60")
	require.ErrorIs(t, err, ErrInvalidClock)

	for _, bad := range []string{"", "7", "7:", "aa:10", "10:bb", "10:100"} {
		_, err = ParseClock(bad)
		require.Error(t, err, bad)
	}
}

// TestClockTimeValidate rejects out-of-range values.
func TestClockTimeValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, ClockTime{Hour: 23, Minute: 59}.Validate())
	require.ErrorIs(t, ClockTime{Hour: -1}.Validate(), ErrInvalidClock)
	require.ErrorIs(t, ClockTime{Minute: -1}.Validate(), ErrInvalidClock)
}
