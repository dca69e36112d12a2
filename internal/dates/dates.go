// Package dates produces calendar-day keys for day-rollover, streak and
// goal-met bookkeeping. Keys use the local wall-clock day so that a log at
// 23:30 still counts toward the day the user sees.
package dates

import "time"

const keyLayout = "2006-01-02"

// Clock abstracts the current time so day-boundary logic is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Key formats t as a YYYY-MM-DD date key in local time. Two keys compare
// equal exactly when they fall on the same calendar day.
func Key(t time.Time) string {
	return t.Local().Format(keyLayout)
}

// Today returns the date key for the clock's current day.
func Today(c Clock) string {
	return Key(c.Now())
}

// Yesterday returns the date key for the day before the clock's current day.
func Yesterday(c Clock) string {
	return Key(c.Now().AddDate(0, 0, -1))
}
