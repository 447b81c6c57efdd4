package activitylog

import "time"

// Clock supplies the timestamps of appended entries.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used when no other Clock is configured.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
