// Package oteladapters implements the observability ports of package activitylog with OpenTelemetry.
//
// Wire them into a catalog.Store like this:
//
//	store, err := catalog.NewStore(
//		activityLog,
//		catalog.WithContextualLogger(oteladapters.NewSlogBridgeLogger("library-catalog")),
//		catalog.WithMetrics(oteladapters.NewMetricsCollector(meterProvider.Meter("library-catalog"))),
//		catalog.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("library-catalog"))),
//	)
package oteladapters
