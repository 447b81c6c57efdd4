package helper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// FixedStart is the first timestamp handed out by clocks created with GivenSteppingClock.
var FixedStart = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

// GivenSteppingClock returns a clock starting at FixedStart which advances by one second per call.
func GivenSteppingClock() *SteppingClock {
	return NewSteppingClock(FixedStart, time.Second)
}

// GivenActivityLog creates an activity log driven by the given clock.
func GivenActivityLog(t testing.TB, clock activitylog.Clock) *activitylog.Log {
	activityLog, err := activitylog.NewLog(activitylog.WithClock(clock))
	require.NoError(t, err)

	return activityLog
}

// GivenStore creates a Store on top of a fresh activity log driven by a SteppingClock.
func GivenStore(t testing.TB, opts ...catalog.Option) (*catalog.Store, *activitylog.Log) {
	activityLog := GivenActivityLog(t, GivenSteppingClock())

	store, err := catalog.NewStore(activityLog, opts...)
	require.NoError(t, err)

	return store, activityLog
}

// FixtureBook builds a book with plausible descriptive data for the given ID.
func FixtureBook(id int, title, author string) catalog.Book {
	return catalog.Book{
		ID:              id,
		Title:           title,
		Author:          author,
		PublicationYear: 1869,
		ISBN:            "978-0-00-000000-0",
	}
}

// GivenBooksWereAdded adds the given books to the store, in order.
func GivenBooksWereAdded(ctx context.Context, store *catalog.Store, books ...catalog.Book) {
	for _, book := range books {
		store.Add(ctx, book)
	}
}

// GivenRussianClassicsWereAdded adds three books: two by "Tolstoy" (ids 1 and 3) and one by
// "Dostoevsky" (id 2).
func GivenRussianClassicsWereAdded(ctx context.Context, store *catalog.Store) {
	GivenBooksWereAdded(
		ctx,
		store,
		catalog.Book{ID: 1, Title: "War and Peace", Author: "Tolstoy", PublicationYear: 1869, ISBN: "978-0-14-303999-0"},
		catalog.Book{ID: 2, Title: "Crime and Punishment", Author: "Dostoevsky", PublicationYear: 1866, ISBN: "978-0-14-044913-6"},
		catalog.Book{ID: 3, Title: "Anna Karenina", Author: "Tolstoy", PublicationYear: 1878, ISBN: "978-0-14-303500-8"},
	)
}

// BookIDs extracts the IDs of the given books, preserving order.
func BookIDs(books []catalog.Book) []int {
	ids := make([]int, 0, len(books))
	for _, book := range books {
		ids = append(ids, book.ID)
	}

	return ids
}

// EntryKinds extracts the operation kinds of the given entries, preserving order.
func EntryKinds(entries []activitylog.Entry) []activitylog.OperationKind {
	kinds := make([]activitylog.OperationKind, 0, len(entries))
	for _, entry := range entries {
		kinds = append(kinds, entry.Kind)
	}

	return kinds
}
