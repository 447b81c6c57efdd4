package activitylog

import (
	"slices"
	"time"
)

/***** Filter *****/

type Filter struct {
	items                    []FilterItem
	occurredFrom             time.Time
	occurredUntil            time.Time
	sequenceNumberHigherThan SequenceNumberUint
}

func (f Filter) Items() []FilterItem {
	return f.items
}

func (f Filter) OccurredFrom() time.Time {
	return f.occurredFrom
}

func (f Filter) OccurredUntil() time.Time {
	return f.occurredUntil
}

func (f Filter) SequenceNumberHigherThan() SequenceNumberUint {
	return f.sequenceNumberHigherThan
}

// Matches reports whether the entry satisfies the filter.
//
// The time range and the sequence boundary must hold, and at least one FilterItem must match
// (a filter without items matches every entry within the bounds).
func (f Filter) Matches(entry Entry) bool {
	if entry.Sequence <= f.sequenceNumberHigherThan {
		return false
	}

	if !f.occurredFrom.IsZero() && entry.OccurredAt.Before(f.occurredFrom) {
		return false
	}

	if !f.occurredUntil.IsZero() && entry.OccurredAt.After(f.occurredUntil) {
		return false
	}

	if len(f.items) == 0 {
		return true
	}

	for _, item := range f.items {
		if item.matches(entry) {
			return true
		}
	}

	return false
}

/***** FilterItem *****/

type FilterItem struct {
	kinds          []OperationKind
	kindsRequested bool
	bookIDs        []BookIDInt
}

func (fi FilterItem) Kinds() []OperationKind {
	return fi.kinds
}

func (fi FilterItem) BookIDs() []BookIDInt {
	return fi.bookIDs
}

// matches requires ANY of the kinds AND ANY of the book IDs; a list that was never requested matches everything.
// Kinds which were requested but all invalid match nothing.
func (fi FilterItem) matches(entry Entry) bool {
	if fi.kindsRequested && !slices.Contains(fi.kinds, entry.Kind) {
		return false
	}

	if len(fi.bookIDs) > 0 && !slices.Contains(fi.bookIDs, entry.BookID) {
		return false
	}

	return true
}

/***** FilterBuilder *****/

// FilterBuilder builds a Filter for querying the activity log.
// It is designed to only allow "useful" filter combinations:
//
//   - empty filter
//   - (kind)
//   - (kind OR kind...)
//   - (book)
//   - (book OR book...)
//   - (kind AND book)
//   - ((kind OR kind...) AND (book OR book...))
//   - ((kind AND book) OR (kind AND book)...) -> multiple FilterItem(s)
//
// Each of them can be bounded by an occurred-at time range and a sequence number.
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyEntry directly creates an empty Filter.
	MatchingAnyEntry() Filter

	BoundingFilterBuilder
}

// BoundingFilterBuilder restricts the Filter to a time range and/or to entries after a sequence number.
type BoundingFilterBuilder interface {
	// OccurredFrom only matches entries which occurred at or after the given time.
	OccurredFrom(from time.Time) BoundedFilterBuilder

	// OccurredUntil only matches entries which occurred at or before the given time.
	OccurredUntil(until time.Time) BoundedFilterBuilder

	// WithSequenceNumberHigherThan only matches entries appended after the given sequence number.
	WithSequenceNumberHigherThan(sequenceNumber SequenceNumberUint) BoundedFilterBuilder
}

type BoundedFilterBuilder interface {
	BoundingFilterBuilder

	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// Finalize returns the Filter, matching any entry within the bounds.
	Finalize() Filter
}

type EmptyFilterItemBuilder interface {
	// AnyKindOf adds one or multiple OperationKinds to the current FilterItem.
	//
	// It sanitizes the input:
	//	- removing invalid OperationKinds
	//	- sorting the OperationKinds
	//	- removing duplicate OperationKinds
	AnyKindOf(kind OperationKind, kinds ...OperationKind) FilterItemBuilderLackingBooks

	// AnyBookOf adds one or multiple book IDs to the current FilterItem.
	//
	// It sanitizes the input:
	//	- sorting the book IDs
	//	- removing duplicate book IDs
	AnyBookOf(bookID BookIDInt, bookIDs ...BookIDInt) FilterItemBuilderLackingKinds
}

type FilterItemBuilderLackingBooks interface {
	// AndAnyBookOf adds one or multiple book IDs to the current FilterItem.
	AndAnyBookOf(bookID BookIDInt, bookIDs ...BookIDInt) CompletedFilterItemBuilder

	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

type FilterItemBuilderLackingKinds interface {
	// AndAnyKindOf adds one or multiple OperationKinds to the current FilterItem.
	AndAnyKindOf(kind OperationKind, kinds ...OperationKind) CompletedFilterItemBuilder

	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

type CompletedFilterItemBuilder interface {
	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder
type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
}

// BuildFilter creates a FilterBuilder which must eventually be finalized with Finalize() or MatchingAnyEntry().
func BuildFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts a new FilterItem.
func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}

	return fb
}

// OccurredFrom only matches entries which occurred at or after the given time.
func (fb filterBuilder) OccurredFrom(from time.Time) BoundedFilterBuilder {
	fb.filter.occurredFrom = ToOccurredAt(from)

	return fb
}

// OccurredUntil only matches entries which occurred at or before the given time.
func (fb filterBuilder) OccurredUntil(until time.Time) BoundedFilterBuilder {
	fb.filter.occurredUntil = ToOccurredAt(until)

	return fb
}

// WithSequenceNumberHigherThan only matches entries appended after the given sequence number.
func (fb filterBuilder) WithSequenceNumberHigherThan(sequenceNumber SequenceNumberUint) BoundedFilterBuilder {
	fb.filter.sequenceNumberHigherThan = sequenceNumber

	return fb
}

// AnyKindOf adds one or multiple OperationKinds to the current FilterItem expecting ANY kind to match.
func (fb filterBuilder) AnyKindOf(kind OperationKind, kinds ...OperationKind) FilterItemBuilderLackingBooks {
	fb.currentFilterItem.kinds = append(
		slices.Clone(fb.currentFilterItem.kinds),
		fb.sanitizeKinds(kind, kinds...)...,
	)
	fb.currentFilterItem.kindsRequested = true

	return fb
}

// AndAnyKindOf adds one or multiple OperationKinds to the current FilterItem expecting ANY kind to match.
func (fb filterBuilder) AndAnyKindOf(kind OperationKind, kinds ...OperationKind) CompletedFilterItemBuilder {
	return fb.AnyKindOf(kind, kinds...)
}

func (fb filterBuilder) sanitizeKinds(kind OperationKind, kinds ...OperationKind) []OperationKind {
	allKinds := append([]OperationKind{kind}, kinds...)
	allKinds = slices.DeleteFunc(allKinds, func(k OperationKind) bool { return !k.IsValid() })
	slices.Sort(allKinds)
	allKinds = slices.Compact(allKinds)
	allKinds = slices.Clip(allKinds)

	return allKinds
}

// AnyBookOf adds one or multiple book IDs to the current FilterItem expecting ANY book to match.
func (fb filterBuilder) AnyBookOf(bookID BookIDInt, bookIDs ...BookIDInt) FilterItemBuilderLackingKinds {
	fb.currentFilterItem.bookIDs = append(
		slices.Clone(fb.currentFilterItem.bookIDs),
		fb.sanitizeBookIDs(bookID, bookIDs...)...,
	)

	return fb
}

// AndAnyBookOf adds one or multiple book IDs to the current FilterItem expecting ANY book to match.
func (fb filterBuilder) AndAnyBookOf(bookID BookIDInt, bookIDs ...BookIDInt) CompletedFilterItemBuilder {
	return fb.AnyBookOf(bookID, bookIDs...)
}

func (fb filterBuilder) sanitizeBookIDs(bookID BookIDInt, bookIDs ...BookIDInt) []BookIDInt {
	allBookIDs := append([]BookIDInt{bookID}, bookIDs...)
	slices.Sort(allBookIDs)
	allBookIDs = slices.Compact(allBookIDs)
	allBookIDs = slices.Clip(allBookIDs)

	return allBookIDs
}

// OrMatching finalizes the current FilterItem and starts a new one.
func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

// MatchingAnyEntry directly creates an empty filter.
func (fb filterBuilder) MatchingAnyEntry() Filter {
	return fb.filter
}

// Finalize returns the Filter including the current FilterItem.
func (fb filterBuilder) Finalize() Filter {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)

	return fb.filter
}
