// Package catalog provides an in-memory book catalog with lending state and an activity log.
//
// A Store owns an ordered collection of books. Every successful mutation (add, remove, update,
// borrow, return) appends exactly one entry to the activitylog.Log the Store was created with;
// failed attempts leave both the collection and the log untouched and are reported with a
// plain false.
//
// Basic usage:
//
//	activityLog, err := activitylog.NewLog()
//	store, err := catalog.NewStore(activityLog, catalog.WithLogger(slog.Default()))
//
//	store.Add(ctx, catalog.Book{ID: 1, Title: "War and Peace", Author: "Leo Tolstoy", PublicationYear: 1869})
//	if store.Borrow(ctx, 1) {
//	    // the book is lent out now
//	}
//
//	fmt.Println(store.StatisticsReport(ctx))
//	fmt.Print(store.RenderActivityLog(ctx))
//
// Observability is optional and dependency-free: WithLogger, WithContextualLogger, WithMetrics and
// WithTracing accept implementations of the ports declared in package activitylog, e.g. the
// OpenTelemetry adapters from package oteladapters.
//
// A Store is safe for concurrent use. One mutex guards the whole find, mutate and log sequence,
// so two concurrent Borrow calls for the same available book succeed exactly once.
package catalog
