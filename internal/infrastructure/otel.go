package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"rankcli/internal/config"
	"rankcli/pkg/contracts"
)

const (
	ServiceName = config.AppName
	MeterName   = "rankcli"
)

// OTelProviders holds the OpenTelemetry providers of one tool run.
// Tracer and Meter are never nil; with exporter "none" they are no-ops.
type OTelProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	// Registry receives the OTel Prometheus exporter's collector
	Registry *promclient.Registry
	Logger   *slog.Logger

	metricsTextfile string
	traceOutput     io.Closer
}

// InitializeOTel initializes tracing and metrics according to cfg
func InitializeOTel(ctx context.Context, cfg config.TelemetryConfig, logger *slog.Logger) (*OTelProviders, error) {
	if logger == nil {
		logger = GetLogger()
	}

	logger.DebugContext(ctx, "Initializing OpenTelemetry",
		slog.String("service", ServiceName),
		slog.String("environment", cfg.Environment),
		slog.String("trace_exporter", cfg.TraceExporter),
		slog.String("metric_exporter", cfg.MetricExporter))

	res := createResource(cfg)

	providers := &OTelProviders{
		Tracer:          tracenoop.NewTracerProvider().Tracer(MeterName),
		Meter:           metricnoop.NewMeterProvider().Meter(MeterName),
		Logger:          logger,
		metricsTextfile: cfg.MetricsTextfile,
	}

	if err := initializeTracing(ctx, cfg, res, providers); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if err := initializeMetrics(ctx, cfg, res, providers); err != nil {
		_ = providers.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return providers, nil
}

// createResource creates the OpenTelemetry resource
func createResource(cfg config.TelemetryConfig) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(contracts.Version),
		semconv.DeploymentEnvironmentName(cfg.Environment),
		attribute.String("service.instance.id", GenerateTraceID()),
	)
}

// initializeTracing sets up the tracer provider
func initializeTracing(ctx context.Context, cfg config.TelemetryConfig, res *resource.Resource, providers *OTelProviders) error {
	var out io.Writer = os.Stderr

	switch cfg.TraceExporter {
	case "stdout":
		if cfg.TraceFile != "" {
			if err := os.MkdirAll(filepath.Dir(cfg.TraceFile), 0755); err != nil {
				return fmt.Errorf("failed to create trace directory: %w", err)
			}
			file, err := os.OpenFile(cfg.TraceFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("failed to open trace file: %w", err)
			}
			providers.traceOutput = file
			out = file
		}
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(out),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)

	providers.TracerProvider = tp
	providers.Tracer = tp.Tracer(MeterName, trace.WithInstrumentationVersion(contracts.Version))
	otel.SetTracerProvider(tp)

	providers.Logger.DebugContext(ctx, "Tracing initialized",
		slog.String("exporter", cfg.TraceExporter),
		slog.Float64("sample_ratio", cfg.SampleRatio))

	return nil
}

// initializeMetrics sets up the meter provider backed by a private Prometheus registry
func initializeMetrics(ctx context.Context, cfg config.TelemetryConfig, res *resource.Resource, providers *OTelProviders) error {
	switch cfg.MetricExporter {
	case "prometheus":
		registry := promclient.NewRegistry()
		exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
		if err != nil {
			return fmt.Errorf("failed to create prometheus exporter: %w", err)
		}

		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		)

		providers.Registry = registry
		providers.MeterProvider = mp
		providers.Meter = mp.Meter(MeterName, metric.WithInstrumentationVersion(contracts.Version))
		otel.SetMeterProvider(mp)
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unsupported metric exporter: %s", cfg.MetricExporter)
	}

	providers.Logger.DebugContext(ctx, "Metrics initialized",
		slog.String("exporter", cfg.MetricExporter),
		slog.String("textfile", cfg.MetricsTextfile))

	return nil
}

// WriteMetricsTextfile writes the registry in the node-exporter textfile format.
// It is a no-op when metrics are disabled.
func (p *OTelProviders) WriteMetricsTextfile(path string) error {
	if p.Registry == nil || path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := promclient.WriteToTextfile(path, p.Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// Shutdown flushes spans, writes the metrics textfile when configured and
// shuts down both providers
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	var errs []error

	// the textfile must be gathered before the reader is shut down
	if err := p.WriteMetricsTextfile(p.metricsTextfile); err != nil {
		errs = append(errs, err)
	}

	if p.TracerProvider != nil {
		if err := p.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if p.traceOutput != nil {
		if err := p.traceOutput.Close(); err != nil {
			errs = append(errs, fmt.Errorf("trace file close: %w", err))
		}
		p.traceOutput = nil
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("opentelemetry shutdown: %w", err)
	}

	p.Logger.DebugContext(ctx, "OpenTelemetry shutdown complete")
	return nil
}

// RunMetrics are the counters and histograms recorded by the ranking tools
type RunMetrics struct {
	RowsProcessed       metric.Int64Counter
	ScoresEstimated     metric.Int64Counter
	ScoresMissing       metric.Int64Counter
	CountryFilesWritten metric.Int64Counter
	RunDuration         metric.Float64Histogram
}

// NewRunMetrics creates the run metrics on meter
func NewRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	rowsProcessed, err := meter.Int64Counter(
		"rankfill_rows_processed_total",
		metric.WithDescription("Total number of ranking rows completed"),
	)
	if err != nil {
		return nil, err
	}

	scoresEstimated, err := meter.Int64Counter(
		"rankfill_scores_estimated_total",
		metric.WithDescription("Total number of scores estimated from the ranking"),
	)
	if err != nil {
		return nil, err
	}

	scoresMissing, err := meter.Int64Counter(
		"rankfill_scores_missing_total",
		metric.WithDescription("Total number of rows left without a score"),
	)
	if err != nil {
		return nil, err
	}

	countryFiles, err := meter.Int64Counter(
		"rankfill_country_files_written_total",
		metric.WithDescription("Total number of per-country files written"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"rankfill_run_duration_seconds",
		metric.WithDescription("Duration of a tool run in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &RunMetrics{
		RowsProcessed:       rowsProcessed,
		ScoresEstimated:     scoresEstimated,
		ScoresMissing:       scoresMissing,
		CountryFilesWritten: countryFiles,
		RunDuration:         runDuration,
	}, nil
}

// RecordRun records the duration and outcome of one run of the named tool
func (m *RunMetrics) RecordRun(ctx context.Context, tool string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RunDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("tool", tool),
			attribute.String("status", status),
		))
}

// RecordCompletion adds the row counts of one completion run
func (m *RunMetrics) RecordCompletion(ctx context.Context, rows, estimated, missing int) {
	if m == nil {
		return
	}
	m.RowsProcessed.Add(ctx, int64(rows))
	m.ScoresEstimated.Add(ctx, int64(estimated))
	m.ScoresMissing.Add(ctx, int64(missing))
}

// RecordCountryFiles adds the number of per-country files written
func (m *RunMetrics) RecordCountryFiles(ctx context.Context, format string, n int) {
	if m == nil {
		return
	}
	m.CountryFilesWritten.Add(ctx, int64(n), metric.WithAttributes(attribute.String("format", format)))
}

// TraceIDFromContext extracts the span's trace ID from context for logging correlation
func TraceIDFromContext(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		return spanCtx.TraceID().String()
	}
	return ""
}

// RecordError records err on the current span and marks it failed
func RecordError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
