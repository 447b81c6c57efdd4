package activitylog

import (
	"fmt"

	"github.com/google/uuid"
)

// Entries is an alias type for a slice of Entry.
type Entries = []Entry

// Entry is one immutable record of a successful catalog mutation.
//
// While its properties are exported, entries are only created by Log.Append; values handed out
// by the Log are copies, so changing them never changes the log.
type Entry struct {
	Sequence    SequenceNumberUint `json:"sequence"`
	EntryID     uuid.UUID          `json:"entryId"`
	Kind        OperationKind      `json:"kind"`
	BookID      BookIDInt          `json:"bookId"`
	OccurredAt  OccurredAt         `json:"occurredAt"`
	Description string             `json:"description"`
}

// buildEntry is the factory used by the Log; sequence and timestamp are assigned by the Log.
func buildEntry(
	sequence SequenceNumberUint,
	kind OperationKind,
	bookID BookIDInt,
	occurredAt OccurredAt,
	description string,
) Entry {

	return Entry{
		Sequence:    sequence,
		EntryID:     uuid.New(),
		Kind:        kind,
		BookID:      bookID,
		OccurredAt:  ToOccurredAt(occurredAt),
		Description: description,
	}
}

// Line renders the entry as one dump line: "[<timestamp>] <KIND> — <description>".
func (e Entry) Line(timestampLayout string) string {
	return fmt.Sprintf("[%s] %s — %s", e.OccurredAt.Format(timestampLayout), e.Kind, e.Description)
}
