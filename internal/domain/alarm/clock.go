package alarm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SnoozeDelay is how long after a firing the follow-up alarm rings.
	SnoozeDelay = 10 * time.Minute

	// DailyInterval is the repeat interval of a regular alarm.
	DailyInterval = 24 * time.Hour

	// DisplayLayout renders the tracked trigger time for the status line.
	DisplayLayout = time.UnixDate

	// noAlarmDisplay is shown when nothing is tracked.
	noAlarmDisplay = "No alarm set"
)

var (
	// ErrInvalidClock is returned for hours outside 0-23 or minutes outside 0-59.
	ErrInvalidClock = errors.New("invalid clock time")
	// errClockFormat is returned when the text is not HH:MM.
	errClockFormat = errors.New("clock time must look like HH:MM")
)

// ClockTime is the hour and minute picked in the time selector.
type ClockTime struct {
	Hour   int
	Minute int
}

// Validate checks that the hour and minute are in range.
func (c ClockTime) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidClock, c.Hour)
	}

	if c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidClock, c.Minute)
	}

	return nil
}

// String renders the value as zero-padded HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClock parses "HH:MM" (or "H:MM") into a validated ClockTime.
func ParseClock(s string) (ClockTime, error) {
	hourText, minuteText, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || minuteText == "" || len(minuteText) > 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", errClockFormat, s)
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", errClockFormat, s)
	}

	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", errClockFormat, s)
	}

	clock := ClockTime{Hour: hour, Minute: minute}
	if err = clock.Validate(); err != nil {
		return ClockTime{}, err
	}

	return clock, nil
}

// ClockOf extracts the hour and minute of t in t's location.
func ClockOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// TodayAt returns the calendar date of now at the clock's hour and minute,
// with zero seconds, in now's location.
func TodayAt(now time.Time, clock ClockTime) time.Time {
	year, month, day := now.Date()

	return time.Date(year, month, day, clock.Hour, clock.Minute, 0, 0, now.Location())
}

// SnoozeAt returns the trigger time of the snooze that follows a firing.
func SnoozeAt(firedAt time.Time) time.Time {
	return firedAt.Add(SnoozeDelay)
}
