package activitylog

// DefaultTimestampLayout is the layout used by Render when none is configured.
// Entries are stored in UTC, so the zone renders as "Z".
const DefaultTimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Option defines a functional option for configuring a Log.
type Option func(*Log) error

// WithClock sets the Clock which supplies the timestamps of appended entries.
// Tests use it to get deterministic timestamps.
func WithClock(clock Clock) Option {
	return func(l *Log) error {
		if clock == nil {
			return ErrNilClock
		}

		l.clock = clock

		return nil
	}
}

// WithTimestampLayout sets the time layout (see package time) used by Render.
func WithTimestampLayout(layout string) Option {
	return func(l *Log) error {
		if layout == "" {
			return ErrEmptyTimestampLayout
		}

		l.timestampLayout = layout

		return nil
	}
}

// WithInitialCapacity preallocates room for the given number of entries.
func WithInitialCapacity(capacity int) Option {
	return func(l *Log) error {
		if capacity > 0 {
			l.entries = make(Entries, 0, capacity)
		}

		return nil
	}
}
