package catalog

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
)

const (
	operationAdd               = "add"
	operationRemove            = "remove"
	operationUpdate            = "update"
	operationBorrow            = "borrow"
	operationReturn            = "return"
	operationFindByID          = "find_by_id"
	operationFindByAuthor      = "find_by_author"
	operationListAvailable     = "list_available"
	operationListAll           = "list_all"
	operationStatistics        = "statistics"
	operationLen               = "len"
	operationActivityEntries   = "activity_entries"
	operationRenderActivityLog = "render_activity_log"
	operationQueryActivity     = "query_activity"

	statusSuccess = "success"
	statusFailure = "failure"

	reasonNotFound     = "not_found"
	reasonInvalidState = "invalid_state"

	metricOperationDuration = "catalog_operation_duration_seconds"
	metricOperationsTotal   = "catalog_operations_total"
	metricOperationFailures = "catalog_operation_failures_total"
	metricBooksTotal        = "catalog_books_total"
	metricBooksAvailable    = "catalog_books_available"

	spanNamePrefix      = "catalog."
	spanAttrOperation   = "operation"
	spanAttrBookID      = "book_id"
	spanAttrReason      = "reason"
	spanAttrResultCount = "result_count"
	spanAttrDurationMS  = "duration_ms"

	labelOperation = "operation"
	labelStatus    = "status"
	labelReason    = "reason"

	logMsgOperation       = "catalog operation: "
	logMsgOperationFailed = "catalog operation failed: "
	logMsgQuery           = "catalog query: "
	logAttrBookID         = "book_id"
	logAttrDurationMS     = "duration_ms"
	logAttrReason         = "reason"
	logAttrResultCount    = "result_count"
)

// operationObserver encapsulates logging, metrics and tracing for one Store operation.
type operationObserver struct {
	store     *Store
	ctx       context.Context
	span      activitylog.SpanContext
	operation string
	bookID    int
	hasBookID bool
	startedAt time.Time
}

// startBookOperation creates an observer for an operation that targets one book ID.
func (s *Store) startBookOperation(ctx context.Context, operation string, bookID int) *operationObserver {
	spanAttrs := map[string]string{
		spanAttrOperation: operation,
		spanAttrBookID:    strconv.Itoa(bookID),
	}

	newCtx, span := s.startTraceSpan(ctx, operation, spanAttrs)

	return &operationObserver{
		store:     s,
		ctx:       newCtx,
		span:      span,
		operation: operation,
		bookID:    bookID,
		hasBookID: true,
		startedAt: time.Now(),
	}
}

// startQuery creates an observer for a read operation.
func (s *Store) startQuery(ctx context.Context, operation string) *operationObserver {
	newCtx, span := s.startTraceSpan(ctx, operation, map[string]string{spanAttrOperation: operation})

	return &operationObserver{
		store:     s,
		ctx:       newCtx,
		span:      span,
		operation: operation,
		startedAt: time.Now(),
	}
}

// finishMutationSuccess reports a successful mutation together with the resulting book counts.
func (o *operationObserver) finishMutationSuccess(stats Statistics) {
	duration := time.Since(o.startedAt)

	o.store.logOperation(o.ctx, o.operation, logAttrBookID, o.bookID, logAttrDurationMS, toMilliseconds(duration))
	o.store.recordDurationMetricsContext(o.ctx, duration, o.operation, statusSuccess)
	o.store.incrementCounterContext(o.ctx, metricOperationsTotal, map[string]string{
		labelOperation: o.operation,
		labelStatus:    statusSuccess,
	})
	o.store.recordValueMetricsContext(o.ctx, metricBooksTotal, float64(stats.Total), o.operation)
	o.store.recordValueMetricsContext(o.ctx, metricBooksAvailable, float64(stats.Available), o.operation)

	o.finishSpan(statusSuccess, duration, map[string]string{})
}

// finishMutationFailure reports a mutation attempt which did not change the catalog.
func (o *operationObserver) finishMutationFailure(reason string) {
	duration := time.Since(o.startedAt)

	o.store.logFailure(o.ctx, o.operation, logAttrBookID, o.bookID, logAttrReason, reason)
	o.store.recordDurationMetricsContext(o.ctx, duration, o.operation, statusFailure)
	o.store.incrementCounterContext(o.ctx, metricOperationsTotal, map[string]string{
		labelOperation: o.operation,
		labelStatus:    statusFailure,
	})
	o.store.incrementCounterContext(o.ctx, metricOperationFailures, map[string]string{
		labelOperation: o.operation,
		labelReason:    reason,
	})

	o.finishSpan(statusFailure, duration, map[string]string{spanAttrReason: reason})
}

// finishQuery reports a completed read operation.
func (o *operationObserver) finishQuery(resultCount int) {
	duration := time.Since(o.startedAt)

	args := []any{logAttrResultCount, resultCount, logAttrDurationMS, toMilliseconds(duration)}
	if o.hasBookID {
		args = append(args, logAttrBookID, o.bookID)
	}

	o.store.logQuery(o.ctx, o.operation, args...)
	o.store.recordDurationMetricsContext(o.ctx, duration, o.operation, statusSuccess)

	o.finishSpan(statusSuccess, duration, map[string]string{spanAttrResultCount: strconv.Itoa(resultCount)})
}

func (o *operationObserver) finishSpan(status string, duration time.Duration, attrs map[string]string) {
	if o.span == nil {
		return
	}

	o.span.AddAttribute(spanAttrDurationMS, strconv.FormatFloat(toMilliseconds(duration), 'f', 2, 64))
	o.store.finishTraceSpan(o.span, status, attrs)
}

// logOperation logs a successful mutation at info level on the configured loggers.
func (s *Store) logOperation(ctx context.Context, operation string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+operation, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+operation, args...)
	}
}

// logFailure logs a failed mutation attempt at debug level on the configured loggers.
func (s *Store) logFailure(ctx context.Context, operation string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(logMsgOperationFailed+operation, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgOperationFailed+operation, args...)
	}
}

// logQuery logs a read operation at debug level on the configured loggers.
func (s *Store) logQuery(ctx context.Context, operation string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(logMsgQuery+operation, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgQuery+operation, args...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordDurationMetricsContext records the operation duration with context if the collector supports it.
func (s *Store) recordDurationMetricsContext(ctx context.Context, duration time.Duration, operation, status string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation: operation,
		labelStatus:    status,
	}

	if contextualCollector, ok := s.metricsCollector.(activitylog.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
	} else {
		s.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
	}
}

// incrementCounterContext increments a counter with context if the collector supports it.
func (s *Store) incrementCounterContext(ctx context.Context, metricName string, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(activitylog.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricName, labels)
	} else {
		s.metricsCollector.IncrementCounter(metricName, labels)
	}
}

// recordValueMetricsContext records a gauge value with context if the collector supports it.
func (s *Store) recordValueMetricsContext(ctx context.Context, metricName string, value float64, operation string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: operation}

	if contextualCollector, ok := s.metricsCollector.(activitylog.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricName, value, labels)
	} else {
		s.metricsCollector.RecordValue(metricName, value, labels)
	}
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (s *Store) startTraceSpan(
	ctx context.Context,
	operation string,
	attrs map[string]string,
) (context.Context, activitylog.SpanContext) {

	if s.tracingCollector != nil {
		return s.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, attrs)
	}

	return ctx, nil
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (s *Store) finishTraceSpan(spanCtx activitylog.SpanContext, status string, attrs map[string]string) {
	if s.tracingCollector != nil && spanCtx != nil {
		s.tracingCollector.FinishSpan(spanCtx, status, attrs)
	}
}
