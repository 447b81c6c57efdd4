package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/library-catalog-go/oteladapters"
)

func Test_SlogBridgeLoggerWithHandler_AllLevels(t *testing.T) {
	// setup
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "catalog query: list_all", "result_count", 3)
	logger.InfoContext(ctx, "catalog operation: borrow", "book_id", 1)
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"msg":"catalog operation: borrow"`)
	assert.Contains(t, output, `"book_id":1`)
	assert.Contains(t, output, `"result_count":3`)
}

func Test_SlogBridgeLogger_WithActiveSpan_DoesNotPanic(t *testing.T) {
	// setup
	tracerProvider := sdktrace.NewTracerProvider()
	defer func() { _ = tracerProvider.Shutdown(context.Background()) }()

	logger := oteladapters.NewSlogBridgeLogger("library-catalog")
	ctx, span := tracerProvider.Tracer("test").Start(context.Background(), "catalog.add")
	defer span.End()

	// act & assert
	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "catalog operation: add", "book_id", 1)
		logger.DebugContext(context.Background(), "without span")
	})
}

func Test_OTelLogger_EmitsRecordsWithSeverityAndTypedAttributes(t *testing.T) {
	// setup
	recorder := newRecordingLogger()
	logger := oteladapters.NewOTelLogger(recorder)
	ctx := context.Background()

	// act
	logger.InfoContext(ctx, "catalog operation: return", "book_id", 3, "duration_ms", 0.25, "reason", "none", "flag", true)
	logger.DebugContext(ctx, "debug")
	logger.WarnContext(ctx, "warn")
	logger.ErrorContext(ctx, "error")

	// assert
	records := recorder.Records()
	require.Len(t, records, 4)

	info := records[0]
	assert.Equal(t, log.SeverityInfo, info.Severity())
	assert.Equal(t, "catalog operation: return", info.Body().AsString())

	bookID, ok := recordAttribute(info, "book_id")
	require.True(t, ok)
	assert.Equal(t, log.KindInt64, bookID.Kind())
	assert.Equal(t, int64(3), bookID.AsInt64())

	duration, ok := recordAttribute(info, "duration_ms")
	require.True(t, ok)
	assert.InDelta(t, 0.25, duration.AsFloat64(), 0.0001)

	reason, ok := recordAttribute(info, "reason")
	require.True(t, ok)
	assert.Equal(t, "none", reason.AsString())

	flag, ok := recordAttribute(info, "flag")
	require.True(t, ok)
	assert.True(t, flag.AsBool())

	assert.Equal(t, log.SeverityDebug, records[1].Severity())
	assert.Equal(t, log.SeverityWarn, records[2].Severity())
	assert.Equal(t, log.SeverityError, records[3].Severity())
}

func Test_OTelLogger_DropsIncompleteAndNonStringKeyedPairs(t *testing.T) {
	// setup
	recorder := newRecordingLogger()
	logger := oteladapters.NewOTelLogger(recorder)

	// act
	logger.InfoContext(context.Background(), "message", 42, "value", "dangling")

	// assert
	records := recorder.Records()
	require.Len(t, records, 1)
	assert.Zero(t, records[0].AttributesLen())
}
