package alarmv1

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// SystemActor identifies the user and machine behind a request.
type SystemActor struct {
	Hostname string `json:"hostname"`
	Username string `json:"username"`
}

// ScheduleRequest picks a time of day for the alarm.
type ScheduleRequest struct {
	Hour   int32        `json:"hour"`
	Minute int32        `json:"minute"`
	Actor  *SystemActor `json:"actor,omitempty"`
	// Interval requests a custom repeat interval; nil or zero means daily.
	Interval *durationpb.Duration `json:"interval,omitempty"`
}

// CancelRequest cancels the tracked alarm, or the registration under
// RequestCode when HasRequestCode is set.
type CancelRequest struct {
	Actor          *SystemActor `json:"actor,omitempty"`
	HasRequestCode bool         `json:"has_request_code,omitempty"`
	RequestCode    int32        `json:"request_code,omitempty"`
}

// ScheduledAlarm is the tracked alarm.
type ScheduledAlarm struct {
	TriggerAt   *timestamppb.Timestamp `json:"trigger_at"`
	RequestCode int32                  `json:"request_code"`
	Interval    *durationpb.Duration   `json:"interval"`
	SetBy       *SystemActor           `json:"set_by,omitempty"`
}

// Registration is one pending host-side trigger.
type Registration struct {
	ID          string                 `json:"id"`
	RequestCode int32                  `json:"request_code"`
	Kind        string                 `json:"kind"`
	Clock       string                 `json:"clock"`
	NextTrigger *timestamppb.Timestamp `json:"next_trigger"`
	Interval    *durationpb.Duration   `json:"interval,omitempty"`
}

// AlarmStateResponse is returned by Schedule, Cancel and GetStatus.
type AlarmStateResponse struct {
	// Status is scheduled, suppressed, canceled or no_alarm.
	Status        string          `json:"status"`
	Alarm         *ScheduledAlarm `json:"alarm,omitempty"`
	RequestCode   int32           `json:"request_code"`
	Notice        string          `json:"notice,omitempty"`
	Display       string          `json:"display"`
	Registrations []*Registration `json:"registrations,omitempty"`
}

// EditResponse carries the values to put into the time input, plus the
// repeat interval so confirming an edit keeps it.
type EditResponse struct {
	HasAlarm bool                 `json:"has_alarm"`
	Hour     int32                `json:"hour"`
	Minute   int32                `json:"minute"`
	Interval *durationpb.Duration `json:"interval,omitempty"`
}

// GetHostname returns the hostname, or "" for a nil actor.
func (a *SystemActor) GetHostname() string {
	if a == nil {
		return ""
	}

	return a.Hostname
}

// GetUsername returns the username, or "" for a nil actor.
func (a *SystemActor) GetUsername() string {
	if a == nil {
		return ""
	}

	return a.Username
}

// GetSetBy returns who set the alarm, or nil for a nil alarm.
func (s *ScheduledAlarm) GetSetBy() *SystemActor {
	if s == nil {
		return nil
	}

	return s.SetBy
}

// GetInterval returns the repeat interval, or nil for a nil response.
func (e *EditResponse) GetInterval() *durationpb.Duration {
	if e == nil {
		return nil
	}

	return e.Interval
}
