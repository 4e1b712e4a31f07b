// Package scheduler is the in-process alarm service used by the daemon.
//
// Registrations are keyed by host.ActionHandle and driven by a robfig/cron
// engine with custom schedules: an anchored repeating schedule and a
// one-shot schedule. Firings are delivered to the handler registered for
// the handle's target.
package scheduler
