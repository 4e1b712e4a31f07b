// Package alarmv1 declares the alarm.v1.AlarmService wire contract: message
// types, the service descriptor, a typed client and the JSON codec the
// service is spoken in.
package alarmv1
