package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
)

const (
	descriptionAdded   = "Added book: %s (id=%d)"
	descriptionRemoved = "Removed book: %s (id=%d)"
	descriptionUpdated = "Updated book (id=%d): '%s' -> '%s'"
	notFound           = -1
)

// Store is the in-memory catalog of books.
//
// It must be created with NewStore. All operations are linear scans in insertion order.
type Store struct {
	mu               sync.Mutex
	books            []Book
	activityLog      *activitylog.Log
	logger           activitylog.Logger
	contextualLogger activitylog.ContextualLogger
	metricsCollector activitylog.MetricsCollector
	tracingCollector activitylog.TracingCollector
}

// mutationResult is what a mutation reports back while the Store's mutex is held.
// An empty failureReason means the mutation happened and must be logged.
type mutationResult struct {
	failureReason string
	kind          activitylog.OperationKind
	description   string
}

func failedWith(reason string) mutationResult {
	return mutationResult{failureReason: reason}
}

func succeededWith(kind activitylog.OperationKind, description string) mutationResult {
	return mutationResult{kind: kind, description: description}
}

// NewStore creates an empty Store which records its mutations in activityLog.
func NewStore(activityLog *activitylog.Log, options ...Option) (*Store, error) {
	if activityLog == nil {
		return nil, ErrNilActivityLog
	}

	s := &Store{
		books:       make([]Book, 0),
		activityLog: activityLog,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add appends the book at the end of the catalog and marks it available, whatever the
// Available field of the argument says. Add always succeeds, also for an ID that already exists.
func (s *Store) Add(ctx context.Context, book Book) {
	s.mutate(ctx, operationAdd, book.ID, func() mutationResult {
		book.Available = true
		s.books = append(s.books, book)

		return succeededWith(activitylog.OperationAdd, fmt.Sprintf(descriptionAdded, book.Title, book.ID))
	})
}

// Remove deletes the first book with the given ID.
// It returns false, and changes nothing, if there is no such book.
func (s *Store) Remove(ctx context.Context, id int) bool {
	return s.mutate(ctx, operationRemove, id, func() mutationResult {
		idx := s.indexOf(id)
		if idx == notFound {
			return failedWith(reasonNotFound)
		}

		removed := s.books[idx]
		s.books = slices.Delete(s.books, idx, idx+1)

		return succeededWith(activitylog.OperationRemove, fmt.Sprintf(descriptionRemoved, removed.Title, removed.ID))
	})
}

// Update replaces the descriptive data of the first book with the given ID.
// The book keeps its ID and its availability but moves to the end of the catalog.
// It returns false, and changes nothing, if there is no such book.
func (s *Store) Update(ctx context.Context, id int, data BookData) bool {
	return s.mutate(ctx, operationUpdate, id, func() mutationResult {
		idx := s.indexOf(id)
		if idx == notFound {
			return failedWith(reasonNotFound)
		}

		book := s.books[idx]
		oldTitle := book.Title
		book.apply(data)

		s.books = append(slices.Delete(s.books, idx, idx+1), book)

		return succeededWith(activitylog.OperationUpdate, fmt.Sprintf(descriptionUpdated, id, oldTitle, data.Title))
	})
}

// FindByID returns a copy of the first book with the given ID, or false if there is none.
func (s *Store) FindByID(ctx context.Context, id int) (Book, bool) {
	observer := s.startBookOperation(ctx, operationFindByID, id)

	s.mu.Lock()
	idx := s.indexOf(id)
	var book Book
	if idx != notFound {
		book = s.books[idx]
	}
	s.mu.Unlock()

	if idx == notFound {
		observer.finishQuery(0)
		return Book{}, false
	}

	observer.finishQuery(1)

	return book, true
}

// FindByAuthor returns copies of all books whose author equals the given name, ignoring case,
// in insertion order. The result is empty, not nil, if there is no match.
func (s *Store) FindByAuthor(ctx context.Context, author string) []Book {
	observer := s.startQuery(ctx, operationFindByAuthor)

	s.mu.Lock()
	found := s.collect(func(book Book) bool { return book.writtenBy(author) })
	s.mu.Unlock()

	observer.finishQuery(len(found))

	return found
}

// ListAvailable returns copies of all books which are not lent out, in insertion order.
func (s *Store) ListAvailable(ctx context.Context) []Book {
	observer := s.startQuery(ctx, operationListAvailable)

	s.mu.Lock()
	available := s.collect(func(book Book) bool { return book.Available })
	s.mu.Unlock()

	observer.finishQuery(len(available))

	return available
}

// ListAll returns a copy of the whole catalog in insertion order.
func (s *Store) ListAll(ctx context.Context) []Book {
	observer := s.startQuery(ctx, operationListAll)

	s.mu.Lock()
	all := slices.Clone(s.books)
	s.mu.Unlock()

	observer.finishQuery(len(all))

	return all
}

// Len returns the number of books in the catalog.
func (s *Store) Len(ctx context.Context) int {
	observer := s.startQuery(ctx, operationLen)

	s.mu.Lock()
	n := len(s.books)
	s.mu.Unlock()

	observer.finishQuery(n)

	return n
}

// mutate runs apply while holding the Store's mutex and, if apply succeeded, appends one entry
// to the activity log before the mutex is released. Observability is reported afterwards.
func (s *Store) mutate(ctx context.Context, operation string, bookID int, apply func() mutationResult) bool {
	observer := s.startBookOperation(ctx, operation, bookID)

	s.mu.Lock()
	result := apply()
	if result.failureReason == "" {
		s.activityLog.Append(result.kind, bookID, result.description)
	}
	stats := s.statisticsLocked()
	s.mu.Unlock()

	if result.failureReason != "" {
		observer.finishMutationFailure(result.failureReason)
		return false
	}

	observer.finishMutationSuccess(stats)

	return true
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.books, func(book Book) bool { return book.ID == id })
}

// collect must be called with s.mu held.
func (s *Store) collect(matches func(Book) bool) []Book {
	found := make([]Book, 0)
	for _, book := range s.books {
		if matches(book) {
			found = append(found, book)
		}
	}

	return found
}
