package catalog

import (
	"context"
	"fmt"
)

const statisticsReportFormat = "=== LIBRARY STATISTICS ===\n" +
	"Total books: %d\n" +
	"Available: %d (%.1f%%)\n" +
	"Borrowed: %d (%.1f%%)"

// Statistics is a snapshot of the catalog's lending state.
// Percentages are in the range 0 to 100 and are 0 for an empty catalog.
type Statistics struct {
	Total               int
	Available           int
	Borrowed            int
	AvailablePercentage float64
	BorrowedPercentage  float64
}

// Statistics returns the current counts of total, available and borrowed books.
func (s *Store) Statistics(ctx context.Context) Statistics {
	observer := s.startQuery(ctx, operationStatistics)

	s.mu.Lock()
	stats := s.statisticsLocked()
	s.mu.Unlock()

	observer.finishQuery(stats.Total)

	return stats
}

// StatisticsReport renders the current Statistics as a four line text block without a trailing newline:
//
//	=== LIBRARY STATISTICS ===
//	Total books: 3
//	Available: 2 (66.7%)
//	Borrowed: 1 (33.3%)
func (s *Store) StatisticsReport(ctx context.Context) string {
	return s.Statistics(ctx).Report()
}

// Report renders the statistics in the StatisticsReport format.
func (st Statistics) Report() string {
	return fmt.Sprintf(
		statisticsReportFormat,
		st.Total,
		st.Available,
		st.AvailablePercentage,
		st.Borrowed,
		st.BorrowedPercentage,
	)
}

// statisticsLocked must be called with s.mu held.
func (s *Store) statisticsLocked() Statistics {
	stats := Statistics{Total: len(s.books)}

	for _, book := range s.books {
		if book.Available {
			stats.Available++
		}
	}

	stats.Borrowed = stats.Total - stats.Available

	if stats.Total > 0 {
		stats.AvailablePercentage = percentage(stats.Available, stats.Total)
		stats.BorrowedPercentage = percentage(stats.Borrowed, stats.Total)
	}

	return stats
}

func percentage(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
