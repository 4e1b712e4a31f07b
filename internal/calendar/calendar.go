// Package calendar renders the tracked alarm as an iCalendar document so it
// can be imported into calendar applications.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// ProductID identifies the generator in exported calendars.
const ProductID = "-//oshokin//alarm-clock//EN"

// errNoAlarm is returned when there is nothing to export.
var errNoAlarm = errors.New("no alarm is set")

// uidNamespace derives stable event UIDs from request codes.
//
//nolint:gochecknoglobals // Fixed namespace value.
var uidNamespace = uuid.MustParse("0f9c7e2a-6d4b-4c1e-9a53-2b8f3d71c0e4")

// Write encodes alarm as a calendar with one repeating event that rings at
// its start. stamp is the DTSTAMP of the event.
func Write(w io.Writer, alarm *domain.ScheduledAlarm, stamp time.Time) error {
	if alarm == nil {
		return errNoAlarm
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, EventUID(alarm))
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	// UTC keeps the instant when the zone has no IANA name, and the host
	// repeats every fixed interval rather than by wall clock.
	event.Props.SetDateTime(ical.PropDateTimeStart, alarm.TriggerAt.UTC())
	event.Props.SetText(ical.PropSummary, "Alarm")
	event.Props.SetText(ical.PropDescription, domain.FormatDisplay(alarm))

	if alarm.Interval > 0 {
		rule := ical.NewProp(ical.PropRecurrenceRule)
		rule.SetValueType(ical.ValueRecurrence)
		rule.Value = RecurrenceRule(alarm.Interval)
		event.Props.Set(rule)
	}

	event.Children = append(event.Children, bell())
	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	return nil
}

// EventUID returns a UID that stays the same for the same registration.
func EventUID(alarm *domain.ScheduledAlarm) string {
	key := strconv.FormatInt(int64(alarm.RequestCode), 10) + "@" + alarm.TriggerAt.UTC().Format(time.RFC3339)

	return uuid.NewSHA1(uidNamespace, []byte(key)).String()
}

// RecurrenceRule expresses interval as an RRULE value using the coarsest
// unit that divides it.
func RecurrenceRule(interval time.Duration) string {
	units := []struct {
		freq string
		size time.Duration
	}{
		{"DAILY", 24 * time.Hour},
		{"HOURLY", time.Hour},
		{"MINUTELY", time.Minute},
		{"SECONDLY", time.Second},
	}

	for _, unit := range units {
		if interval%unit.size != 0 {
			continue
		}

		n := int64(interval / unit.size)
		if n == 1 {
			return "FREQ=" + unit.freq
		}

		return "FREQ=" + unit.freq + ";INTERVAL=" + strconv.FormatInt(n, 10)
	}

	// Sub-second intervals round up to one second.
	return "FREQ=SECONDLY"
}

// bell is the VALARM that rings when the event starts.
func bell() *ical.Component {
	alarm := ical.NewComponent(ical.CompAlarm)
	alarm.Props.SetText(ical.PropAction, "DISPLAY")
	alarm.Props.SetText(ical.PropDescription, "Alarm")

	trigger := ical.NewProp(ical.PropTrigger)
	trigger.SetValueType(ical.ValueDuration)
	trigger.Value = "PT0S"
	alarm.Props.Set(trigger)

	return alarm
}
