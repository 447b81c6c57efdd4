package config

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var ErrUnknownExporter = errors.New("unknown telemetry exporter")

// ObservabilityProviders holds the OpenTelemetry providers built from an ObservabilityConfig.
type ObservabilityProviders struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
	LoggerProvider *sdklog.LoggerProvider
	Resource       *resource.Resource
}

// NewObservabilityProviders creates the tracer, meter and logger providers and registers them globally.
// The stdout exporter writes to out, the otlp exporter sends to the configured gRPC endpoints.
func NewObservabilityProviders(ctx context.Context, cfg ObservabilityConfig, out io.Writer) (*ObservabilityProviders, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	exporters, err := newExporters(ctx, cfg, out)
	if err != nil {
		return nil, err
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(exporters.trace),
		trace.WithResource(res),
	)

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporters.metric,
			metric.WithInterval(cfg.MetricInterval))),
		metric.WithResource(res),
	)

	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporters.log)),
		sdklog.WithResource(res),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	global.SetLoggerProvider(loggerProvider)

	return &ObservabilityProviders{
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		LoggerProvider: loggerProvider,
		Resource:       res,
	}, nil
}

// Shutdown flushes and shuts down all providers, returning every error that occurred.
func (p *ObservabilityProviders) Shutdown(ctx context.Context) error {
	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
		p.LoggerProvider.Shutdown(ctx),
	)
}

type telemetryExporters struct {
	trace  trace.SpanExporter
	metric metric.Exporter
	log    sdklog.Exporter
}

func newExporters(ctx context.Context, cfg ObservabilityConfig, out io.Writer) (telemetryExporters, error) {
	switch cfg.Exporter {
	case ExporterStdout:
		return newStdoutExporters(ctx, out)
	case ExporterOTLP:
		return newOTLPExporters(ctx, cfg)
	default:
		return telemetryExporters{}, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}
}

func newStdoutExporters(ctx context.Context, out io.Writer) (telemetryExporters, error) {
	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return telemetryExporters{}, fmt.Errorf("create stdout trace exporter: %w", err)
	}

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(out))
	if err != nil {
		return telemetryExporters{}, shutdownOnError(ctx, fmt.Errorf("create stdout metric exporter: %w", err), traceExporter)
	}

	logExporter, err := stdoutlog.New(stdoutlog.WithWriter(out))
	if err != nil {
		return telemetryExporters{}, shutdownOnError(ctx, fmt.Errorf("create stdout log exporter: %w", err), traceExporter, metricExporter)
	}

	return telemetryExporters{trace: traceExporter, metric: metricExporter, log: logExporter}, nil
}

func newOTLPExporters(ctx context.Context, cfg ObservabilityConfig) (telemetryExporters, error) {
	traceExporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(cfg.TraceEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return telemetryExporters{}, fmt.Errorf("create otlp trace exporter: %w", err)
	}

	metricExporter, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(cfg.MetricEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return telemetryExporters{}, shutdownOnError(ctx, fmt.Errorf("create otlp metric exporter: %w", err), traceExporter)
	}

	logExporter, err := otlploggrpc.New(
		ctx,
		otlploggrpc.WithEndpoint(cfg.LogEndpoint),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		return telemetryExporters{}, shutdownOnError(ctx, fmt.Errorf("create otlp log exporter: %w", err), traceExporter, metricExporter)
	}

	return telemetryExporters{trace: traceExporter, metric: metricExporter, log: logExporter}, nil
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdownOnError releases the exporters built before err occurred and returns err joined with their shutdown errors.
func shutdownOnError(ctx context.Context, err error, built ...shutdowner) error {
	errs := []error{err}
	for _, exporter := range built {
		errs = append(errs, exporter.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
