package catalog

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
)

// ActivityEntries returns a copy of all activity log entries in chronological order.
func (s *Store) ActivityEntries(ctx context.Context) []activitylog.Entry {
	observer := s.startQuery(ctx, operationActivityEntries)
	entries := s.activityLog.Entries()
	observer.finishQuery(len(entries))

	return entries
}

// RenderActivityLog returns the human-readable dump of the activity log, one line per entry.
func (s *Store) RenderActivityLog(ctx context.Context) string {
	observer := s.startQuery(ctx, operationRenderActivityLog)
	rendered := s.activityLog.Render()
	observer.finishQuery(s.activityLog.Len())

	return rendered
}

// QueryActivity returns the activity log entries matching the filter, in chronological order.
func (s *Store) QueryActivity(ctx context.Context, filter activitylog.Filter) []activitylog.Entry {
	observer := s.startQuery(ctx, operationQueryActivity)
	entries := s.activityLog.Query(filter)
	observer.finishQuery(len(entries))

	return entries
}
