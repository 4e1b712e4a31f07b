package scheduler

import "time"

// anchored fires at start and then every interval after it.
type anchored struct {
	start    time.Time
	interval time.Duration
}

// Next returns the first occurrence strictly after t. A start in the past
// waits for the next aligned occurrence.
func (a anchored) Next(t time.Time) time.Time {
	if t.Before(a.start) {
		return a.start
	}

	steps := t.Sub(a.start)/a.interval + 1

	return a.start.Add(steps * a.interval)
}

// once fires a single time.
type once struct {
	at time.Time
}

// Next returns at until it has passed, then the zero time, which cron
// treats as "never again".
func (o once) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}

	return time.Time{}
}
