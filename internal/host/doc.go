// Package host declares the operating-system services the alarm controller
// calls into: the alarm registration service, the notification policy
// service and the fired-alarm callback.
package host
