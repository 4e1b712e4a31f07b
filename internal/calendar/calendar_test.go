package calendar

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// TestRecurrenceRule picks the coarsest unit.
func TestRecurrenceRule(t *testing.T) {
	t.Parallel()

	cases := map[time.Duration]string{
		24 * time.Hour:          "FREQ=DAILY",
		48 * time.Hour:          "FREQ=DAILY;INTERVAL=2",
		time.Hour:               "FREQ=HOURLY",
		90 * time.Minute:        "FREQ=MINUTELY;INTERVAL=90",
		45 * time.Second:        "FREQ=SECONDLY;INTERVAL=45",
		1500 * time.Millisecond: "FREQ=SECONDLY",
	}
	for interval, want := range cases {
		require.Equal(t, want, RecurrenceRule(interval), interval.String())
	}
}

// TestWrite encodes the tracked alarm and decodes it back.
func TestWrite(t *testing.T) {
	t.Parallel()

	var (
		buf   bytes.Buffer
		start = time.Date(2026, time.October, 17, 7, 30, 0, 0, time.UTC)
		alarm = &domain.ScheduledAlarm{
			TriggerAt:   start,
			RequestCode: 2,
			Interval:    domain.DailyInterval,
		}
	)

	require.NoError(t, Write(&buf, alarm, start.Add(-time.Hour)))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 1)

	event := events[0]
	require.Equal(t, EventUID(alarm), event.Props.Get(ical.PropUID).Value)
	require.Equal(t, "FREQ=DAILY", event.Props.Get(ical.PropRecurrenceRule).Value)

	dtstart, err := event.DateTimeStart(time.UTC)
	require.NoError(t, err)
	require.True(t, start.Equal(dtstart))

	require.Len(t, event.Children, 1)
	require.Equal(t, ical.CompAlarm, event.Children[0].Name)
	require.Equal(t, "PT0S", event.Children[0].Props.Get(ical.PropTrigger).Value)

	// Same registration, same UID.
	require.Equal(t, EventUID(alarm), EventUID(alarm.Clone()))

	require.Error(t, Write(&buf, nil, start))
}

// TestWrite_ZonedStart keeps the instant of a start decoded without a zone name.
func TestWrite_ZonedStart(t *testing.T) {
	t.Parallel()

	var (
		buf    bytes.Buffer
		berlin = time.FixedZone("", 2*60*60)
		start  = time.Date(2026, time.October, 17, 7, 30, 0, 0, berlin)
		alarm  = &domain.ScheduledAlarm{
			TriggerAt:   start,
			RequestCode: 4,
			Interval:    domain.DailyInterval,
		}
	)

	require.NoError(t, Write(&buf, alarm, start))
	require.NotContains(t, buf.String(), "TZID")
	require.Contains(t, buf.String(), "DTSTART:20261017T053000Z")

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 1)

	dtstart, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	require.True(t, start.Equal(dtstart), "got %s, want %s", dtstart, start.UTC())
}
