package alarm

import "time"

// RequestCode distinguishes pending registrations made for the same receiver.
type RequestCode int32

// ClockType selects the host clock an alarm is registered against.
type ClockType int

const (
	// ClockRTC fires on wall-clock time without waking a sleeping device.
	ClockRTC ClockType = iota
	// ClockRTCWakeup fires on wall-clock time and wakes the device.
	ClockRTCWakeup
)

// String returns the host name of the clock type.
func (c ClockType) String() string {
	if c == ClockRTCWakeup {
		return "RTC_WAKEUP"
	}

	return "RTC"
}

// ScheduledAlarm is the alarm currently tracked by the controller.
// It lives in process memory only.
type ScheduledAlarm struct {
	// TriggerAt is the first trigger time.
	TriggerAt time.Time
	// RequestCode is the code the registration was made under.
	RequestCode RequestCode
	// Interval is the repeat interval of the registration.
	Interval time.Duration
	// SetBy is who scheduled the alarm.
	SetBy *Actor
}

// Clone returns a copy that shares no pointers with the original.
func (s *ScheduledAlarm) Clone() *ScheduledAlarm {
	if s == nil {
		return nil
	}

	cloned := *s
	cloned.SetBy = s.SetBy.Clone()

	return &cloned
}

// Clock returns the hour and minute of the trigger time.
func (s *ScheduledAlarm) Clock() ClockTime {
	return ClockOf(s.TriggerAt)
}

// FormatDisplay renders the status line for the tracked alarm.
func FormatDisplay(s *ScheduledAlarm) string {
	if s == nil {
		return noAlarmDisplay
	}

	return "Alarm set for: " + s.TriggerAt.Format(DisplayLayout)
}
