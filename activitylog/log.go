package activitylog

import (
	"strings"
	"sync"
)

// Log is the append-only, time-ordered sequence of catalog operation entries.
//
// It must be created with NewLog. The zero value is not usable.
// A Log is safe for concurrent use.
type Log struct {
	mu              sync.RWMutex
	entries         Entries
	clock           Clock
	timestampLayout string
}

// NewLog creates an empty Log with the given options.
// Without options, it uses the SystemClock and the DefaultTimestampLayout.
func NewLog(opts ...Option) (*Log, error) {
	l := &Log{
		entries:         make(Entries, 0),
		clock:           SystemClock{},
		timestampLayout: DefaultTimestampLayout,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Append records a new entry at the end of the log and returns it.
// The timestamp is captured from the configured Clock at append time.
// Append has no failure mode.
func (l *Log) Append(kind OperationKind, bookID BookIDInt, description string) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := buildEntry(
		SequenceNumberUint(len(l.entries)+1),
		kind,
		bookID,
		l.clock.Now(),
		description,
	)

	l.entries = append(l.entries, entry)

	return entry
}

// Entries returns a copy of all entries in chronological (= insertion) order.
func (l *Log) Entries() Entries {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make(Entries, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// Len returns the number of entries. It never decreases.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// Query returns copies of all entries matching the filter, in chronological order.
func (l *Log) Query(filter Filter) Entries {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matching := make(Entries, 0)
	for _, entry := range l.entries {
		if filter.Matches(entry) {
			matching = append(matching, entry)
		}
	}

	return matching
}

// Render produces the human-readable dump: one line per entry, each terminated by a newline,
// formatted as "[<timestamp>] <KIND> — <description>". An empty log renders as "".
func (l *Log) Render() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var sb strings.Builder
	for _, entry := range l.entries {
		sb.WriteString(entry.Line(l.timestampLayout))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// TimestampLayout returns the layout Render uses for timestamps.
func (l *Log) TimestampLayout() string {
	return l.timestampLayout
}
