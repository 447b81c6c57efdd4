// Package activitylog provides the append-only activity log of the library catalog.
//
// Every successful mutation of the catalog (adding, removing, updating, borrowing and
// returning a book) is recorded as exactly one Entry. Entries are never removed or
// reordered, so the insertion order is the chronological order.
//
// The log supports:
//   - Appending entries with a timestamp taken from an injectable Clock
//   - Reading all entries (as a copy)
//   - Rendering a human-readable dump, one line per entry
//   - Querying entries with a Filter (operation kinds, book IDs, time range, sequence)
//   - Exporting entries as JSON lines
//
// Key types:
//   - Log: the append-only sequence of entries
//   - Entry: one immutable log record
//   - OperationKind: the closed set of operation kinds (ADD, REMOVE, UPDATE, BORROW, RETURN)
//   - Filter: criteria for querying entries
//
// Common usage pattern:
//
//	activityLog, err := activitylog.NewLog(activitylog.WithClock(clock))
//	if err != nil {
//		// handle error
//	}
//
//	activityLog.Append(activitylog.OperationBorrow, 42, "Borrowed book: War and Peace (id=42)")
//
//	filter := activitylog.BuildFilter().
//		Matching().
//		AnyKindOf(activitylog.OperationBorrow, activitylog.OperationReturn).
//		AndAnyBookOf(42).
//		Finalize()
//
//	lendings := activityLog.Query(filter)
//
// The package also defines the dependency-free observability ports (Logger, ContextualLogger,
// MetricsCollector, TracingCollector) which the catalog store reports to.
package activitylog
