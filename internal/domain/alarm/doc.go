// Package alarm contains the core domain types of the alarm clock.
//
// It defines the clock value picked by the user, the tracked ScheduledAlarm,
// request codes, the host interruption filter and the time arithmetic used
// when scheduling and snoozing.
package alarm
