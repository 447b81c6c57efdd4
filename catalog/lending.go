package catalog

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
)

const (
	descriptionBorrowed = "Borrowed book: %s (id=%d)"
	descriptionReturned = "Returned book: %s (id=%d)"
)

// Borrow lends out the first book with the given ID.
// It returns false if there is no such book or if the book is already lent out.
func (s *Store) Borrow(ctx context.Context, id int) bool {
	return s.mutate(ctx, operationBorrow, id, func() mutationResult {
		return s.setAvailabilityLocked(id, false, activitylog.OperationBorrow, descriptionBorrowed)
	})
}

// Return marks the first book with the given ID as available again.
// It returns false if there is no such book or if the book is not lent out.
func (s *Store) Return(ctx context.Context, id int) bool {
	return s.mutate(ctx, operationReturn, id, func() mutationResult {
		return s.setAvailabilityLocked(id, true, activitylog.OperationReturn, descriptionReturned)
	})
}

// setAvailabilityLocked flips the availability of a book to the wanted value.
// It must be called with s.mu held.
func (s *Store) setAvailabilityLocked(
	id int,
	wanted bool,
	kind activitylog.OperationKind,
	descriptionFormat string,
) mutationResult {

	idx := s.indexOf(id)
	if idx == notFound {
		return failedWith(reasonNotFound)
	}

	if s.books[idx].Available == wanted {
		return failedWith(reasonInvalidState)
	}

	s.books[idx].Available = wanted

	return succeededWith(kind, fmt.Sprintf(descriptionFormat, s.books[idx].Title, id))
}
