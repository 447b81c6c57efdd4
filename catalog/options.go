package catalog

import "github.com/AntonStoeckl/library-catalog-go/activitylog"

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: read operations and failed mutation attempts with their reason
// Info level: successful mutations with book id and duration.
func WithLogger(logger activitylog.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Store.
// It receives the same messages as the Logger, together with the context of the operation,
// which enables trace correlation when tracing is enabled.
func WithContextualLogger(logger activitylog.ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// The collector will receive operation durations and counts, failures by reason, and the
// number of total and available books after each successful mutation.
func WithMetrics(collector activitylog.MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Store.
// One span is created per operation.
func WithTracing(collector activitylog.TracingCollector) Option {
	return func(s *Store) error {
		s.tracingCollector = collector
		return nil
	}
}
