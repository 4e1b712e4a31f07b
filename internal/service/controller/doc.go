// Package controller implements the alarm controller: the request-code
// counter, the tracked alarm and the schedule, edit, cancel and snooze
// operations that translate user actions into host alarm registrations.
package controller
