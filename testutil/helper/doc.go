// Package helper provides testing utilities for the catalog and the activity log.
//
// It contains test doubles for the observability ports (a slog.Handler spy, a metrics
// collector spy, a tracing collector spy and a contextual logger spy), a deterministic
// clock, and fixture builders for catalog books.
package helper
