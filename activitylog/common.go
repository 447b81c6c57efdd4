package activitylog

import (
	"errors"
	"time"
)

var ErrNilClock = errors.New("nil clock supplied")
var ErrEmptyTimestampLayout = errors.New("empty timestamp layout supplied")
var ErrExportFailed = errors.New("exporting activity log failed")

// SequenceNumberUint is a type alias for uint, representing the 1-based position of an Entry in the Log.
type SequenceNumberUint = uint

// BookIDInt is a type alias for int, representing the caller-assigned ID of a catalog book.
type BookIDInt = int

// OccurredAt represents when an operation was recorded.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
