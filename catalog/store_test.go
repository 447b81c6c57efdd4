package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
	"github.com/AntonStoeckl/library-catalog-go/catalog"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/helper" //nolint:revive
)

func Test_NewStore_WithNilActivityLog_ReturnsError(t *testing.T) {
	// act
	store, err := catalog.NewStore(nil)

	// assert
	assert.ErrorIs(t, err, catalog.ErrNilActivityLog)
	assert.Nil(t, store)
}

func Test_Store_Add_ThenFindByID_ReturnsEqualAvailableBook(t *testing.T) {
	// setup
	ctx := context.Background()
	store, activityLog := GivenStore(t)
	book := FixtureBook(7, "War and Peace", "Leo Tolstoy")

	// act
	store.Add(ctx, book)
	found, ok := store.FindByID(ctx, 7)

	// assert
	require.True(t, ok)
	book.Available = true
	assert.Equal(t, book, found)
	assert.Equal(t, 1, activityLog.Len())
	assert.Equal(t, activitylog.OperationAdd, activityLog.Entries()[0].Kind)
	assert.Equal(t, "Added book: War and Peace (id=7)", activityLog.Entries()[0].Description)
}

func Test_Store_Add_ForcesAvailability(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	book := FixtureBook(1, "Anna Karenina", "Leo Tolstoy")
	book.Available = false

	// act
	store.Add(ctx, book)

	// assert
	found, ok := store.FindByID(ctx, 1)
	require.True(t, ok)
	assert.True(t, found.Available)
}

func Test_Store_FindByID_ForUnknownID_ReturnsFalse(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)

	// act
	found, ok := store.FindByID(ctx, 99)

	// assert
	assert.False(t, ok)
	assert.Equal(t, catalog.Book{}, found)
}

func Test_Store_Remove_ExistingBook_ShrinksCatalogAndLogsOnce(t *testing.T) {
	// setup
	ctx := context.Background()
	store, activityLog := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)

	// act
	removed := store.Remove(ctx, 2)

	// assert
	assert.True(t, removed)
	assert.Equal(t, 2, store.Len(ctx))
	assert.Equal(t, []int{1, 3}, BookIDs(store.ListAll(ctx)))
	assert.Equal(t, 4, activityLog.Len())

	last := activityLog.Entries()[3]
	assert.Equal(t, activitylog.OperationRemove, last.Kind)
	assert.Equal(t, 2, last.BookID)
	assert.Equal(t, "Removed book: Crime and Punishment (id=2)", last.Description)
}

func Test_Store_Remove_UnknownBook_ChangesNothing(t *testing.T) {
	// setup
	ctx := context.Background()
	store, activityLog := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)
	before := store.ListAll(ctx)

	// act
	removed := store.Remove(ctx, 42)

	// assert
	assert.False(t, removed)
	assert.Equal(t, before, store.ListAll(ctx))
	assert.Equal(t, 3, activityLog.Len())
}

func Test_Store_Remove_WithDuplicateIDs_RemovesFirstMatchOnly(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	GivenBooksWereAdded(
		ctx,
		store,
		FixtureBook(5, "First", "Someone"),
		FixtureBook(5, "Second", "Someone"),
	)

	// act
	removed := store.Remove(ctx, 5)

	// assert
	assert.True(t, removed)
	found, ok := store.FindByID(ctx, 5)
	require.True(t, ok)
	assert.Equal(t, "Second", found.Title)
}

func Test_Store_Update_ExistingBook_ReplacesDataKeepsIdentityAndMovesToEnd(t *testing.T) {
	// setup
	ctx := context.Background()
	store, activityLog := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)
	require.True(t, store.Borrow(ctx, 1))

	data := catalog.BookData{
		Title:           "Voyna i mir",
		Author:          "Lev Tolstoy",
		PublicationYear: 1867,
		ISBN:            "978-5-17-000000-1",
	}

	// act
	updated := store.Update(ctx, 1, data)

	// assert
	assert.True(t, updated)

	found, ok := store.FindByID(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, 1, found.ID)
	assert.False(t, found.Available)
	assert.Equal(t, data, found.Data())
	assert.Equal(t, []int{2, 3, 1}, BookIDs(store.ListAll(ctx)))

	last := activityLog.Entries()[activityLog.Len()-1]
	assert.Equal(t, activitylog.OperationUpdate, last.Kind)
	assert.Equal(t, "Updated book (id=1): 'War and Peace' -> 'Voyna i mir'", last.Description)
}

func Test_Store_Update_UnknownBook_ChangesNothing(t *testing.T) {
	// setup
	ctx := context.Background()
	store, activityLog := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)
	before := store.ListAll(ctx)

	// act
	updated := store.Update(ctx, 42, catalog.BookData{Title: "Nothing"})

	// assert
	assert.False(t, updated)
	assert.Equal(t, before, store.ListAll(ctx))
	assert.Equal(t, 3, activityLog.Len())
}

func Test_Store_Update_WithDuplicateIDs_UpdatesFirstMatchOnly(t *testing.T) {
	// setup
	ctx := context.Background()
	store, activityLog := GivenStore(t)
	GivenBooksWereAdded(
		ctx,
		store,
		FixtureBook(5, "First", "Someone"),
		FixtureBook(5, "Second", "Someone"),
	)

	// act
	updated := store.Update(ctx, 5, catalog.BookData{Title: "Updated", Author: "Someone"})

	// assert
	assert.True(t, updated)

	all := store.ListAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title)
	assert.Equal(t, "Updated", all[1].Title)

	found, ok := store.FindByID(ctx, 5)
	require.True(t, ok)
	assert.Equal(t, "Second", found.Title)

	last := activityLog.Entries()[activityLog.Len()-1]
	assert.Equal(t, "Updated book (id=5): 'First' -> 'Updated'", last.Description)
}

func Test_Store_FindByAuthor_MatchesCaseInsensitivelyInInsertionOrder(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)

	// act
	found := store.FindByAuthor(ctx, "tOLSTOY")

	// assert
	assert.Equal(t, []int{1, 3}, BookIDs(found))
}

func Test_Store_FindByAuthor_RequiresWholeName(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)

	// act
	found := store.FindByAuthor(ctx, "Tolst")

	// assert
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func Test_Store_FindByAuthor_OnEmptyCatalog_ReturnsEmptySlice(t *testing.T) {
	// setup
	store, _ := GivenStore(t)

	// act
	found := store.FindByAuthor(context.Background(), "Anyone")

	// assert
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func Test_Store_ReadOperations_ReturnCopies(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)

	// act
	all := store.ListAll(ctx)
	all[0].Title = "changed"
	all[1].Available = false

	byAuthor := store.FindByAuthor(ctx, "Tolstoy")
	byAuthor[0].Author = "changed"

	byID, _ := store.FindByID(ctx, 3)
	byID.Title = "changed"

	// assert
	original, _ := store.FindByID(ctx, 1)
	assert.Equal(t, "War and Peace", original.Title)
	assert.Equal(t, "Tolstoy", original.Author)

	second, _ := store.FindByID(ctx, 2)
	assert.True(t, second.Available)

	third, _ := store.FindByID(ctx, 3)
	assert.Equal(t, "Anna Karenina", third.Title)
}

func Test_Store_ListAvailable_OmitsBorrowedBooks(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)
	require.True(t, store.Borrow(ctx, 2))

	// act
	available := store.ListAvailable(ctx)

	// assert
	assert.Equal(t, []int{1, 3}, BookIDs(available))
}

func Test_Store_FailedOperations_DoNotTouchTheActivityLog(t *testing.T) {
	// setup
	ctx := context.Background()
	store, activityLog := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)
	require.True(t, store.Borrow(ctx, 1))
	before := activityLog.Entries()

	// act
	results := []bool{
		store.Remove(ctx, 99),
		store.Update(ctx, 99, catalog.BookData{Title: "x"}),
		store.Borrow(ctx, 99),
		store.Borrow(ctx, 1),
		store.Return(ctx, 99),
		store.Return(ctx, 2),
	}

	// assert
	for _, result := range results {
		assert.False(t, result)
	}
	assert.Equal(t, before, activityLog.Entries())
}

func Test_Store_RussianClassicsScenario(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	GivenRussianClassicsWereAdded(ctx, store)

	// act & assert
	assert.Equal(t, []int{1, 3}, BookIDs(store.FindByAuthor(ctx, "tolstoy")))

	entriesBeforeLending := store.ActivityEntries(ctx)
	assert.True(t, store.Borrow(ctx, 1))
	assert.True(t, store.Return(ctx, 1))

	book, found := store.FindByID(ctx, 1)
	require.True(t, found)
	assert.True(t, book.Available)
	assert.Len(t, store.ActivityEntries(ctx), len(entriesBeforeLending)+2)

	filter := activitylog.BuildFilter().
		Matching().
		AnyBookOf(1).
		AndAnyKindOf(activitylog.OperationBorrow, activitylog.OperationReturn).
		Finalize()
	lending := store.QueryActivity(ctx, filter)
	assert.Equal(t, []activitylog.OperationKind{activitylog.OperationBorrow, activitylog.OperationReturn}, EntryKinds(lending))

	assert.True(t, store.Remove(ctx, 2))
	_, found = store.FindByID(ctx, 2)
	assert.False(t, found)

	assert.Equal(
		t,
		[]activitylog.OperationKind{
			activitylog.OperationAdd,
			activitylog.OperationAdd,
			activitylog.OperationAdd,
			activitylog.OperationBorrow,
			activitylog.OperationReturn,
			activitylog.OperationRemove,
		},
		EntryKinds(store.ActivityEntries(ctx)),
	)
}

func Test_Store_RenderActivityLog_RendersOneLinePerEntry(t *testing.T) {
	// setup
	ctx := context.Background()
	store, _ := GivenStore(t)
	store.Add(ctx, FixtureBook(1, "War and Peace", "Leo Tolstoy"))
	store.Borrow(ctx, 1)

	// act
	rendered := store.RenderActivityLog(ctx)

	// assert
	expected := "[2024-03-01T09:30:00.000000Z] ADD — Added book: War and Peace (id=1)\n" +
		"[2024-03-01T09:30:01.000000Z] BORROW — Borrowed book: War and Peace (id=1)\n"
	assert.Equal(t, expected, rendered)
}

func Test_Book_String(t *testing.T) {
	// setup
	book := catalog.Book{
		ID:              1,
		Title:           "War and Peace",
		Author:          "L.N. Tolstoy",
		PublicationYear: 1869,
		ISBN:            "978-5-17-090335-2",
		Available:       true,
	}

	// act & assert
	assert.Equal(t, `#1 "War and Peace" by L.N. Tolstoy (1869, ISBN 978-5-17-090335-2), available`, book.String())

	book.Available = false
	assert.Equal(t, `#1 "War and Peace" by L.N. Tolstoy (1869, ISBN 978-5-17-090335-2), borrowed`, book.String())
}
