package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"rankcli/internal/config"
	"rankcli/internal/dataprocessing"
	"rankcli/internal/infrastructure"
	"rankcli/internal/validation"
)

// TableWriter persists a completed table
type TableWriter interface {
	WriteTable(path string, table *dataprocessing.Table) error
}

// CompletionService runs the ranking completion pipeline:
// read, fill missing scores, stamp the academic year, write, summarize
type CompletionService struct {
	validator *validation.FileValidator
	processor *dataprocessing.ScoreFillProcessor
	writer    TableWriter
	tracer    trace.Tracer
	metrics   *infrastructure.RunMetrics
	logger    *slog.Logger
}

// NewCompletionService creates a completion service. metrics may be nil.
func NewCompletionService(writer TableWriter, tracer trace.Tracer, metrics *infrastructure.RunMetrics, logger *slog.Logger) (*CompletionService, error) {
	if tracer == nil {
		return nil, ErrNilTelemetry
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = infrastructure.WithComponent(logger, "completion")

	return &CompletionService{
		validator: validation.NewFileValidator(logger),
		processor: dataprocessing.NewScoreFillProcessor(dataprocessing.DefaultAcademicPeriod()),
		writer:    writer,
		tracer:    tracer,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// Run completes the sheet at inputPath and writes it to outputPath.
// Any failure aborts the run before the output is replaced.
func (s *CompletionService) Run(ctx context.Context, inputPath, outputPath string) (dataprocessing.Summary, error) {
	start := time.Now()
	ctx = infrastructure.EnsureTraceID(ctx)

	ctx, span := s.tracer.Start(ctx, "rankfill.complete",
		trace.WithAttributes(
			attribute.String("rankfill.input", inputPath),
			attribute.String("rankfill.output", outputPath),
		))
	defer span.End()

	summary, stats, err := s.run(ctx, inputPath, outputPath)
	s.metrics.RecordRun(ctx, "rankfill", time.Since(start), err)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		s.logger.ErrorContext(ctx, "Ranking completion failed",
			slog.String("input", inputPath),
			infrastructure.ErrorAttr(err))
		return dataprocessing.Summary{}, err
	}

	s.metrics.RecordCompletion(ctx, summary.Total, stats.Estimated, summary.WithoutScore)
	span.SetAttributes(
		attribute.Int("rankfill.rows", summary.Total),
		attribute.Int("rankfill.with_score", summary.WithScore),
		attribute.Int("rankfill.without_score", summary.WithoutScore),
		attribute.Int("rankfill.estimated", stats.Estimated),
	)

	s.logger.InfoContext(ctx, "Ranking completion finished",
		slog.String("output", outputPath),
		slog.Int("rows", summary.Total),
		slog.Int("preserved", stats.Preserved),
		slog.Int("estimated", stats.Estimated),
		slog.Int("unresolved", stats.Unresolved),
		slog.Duration("duration", time.Since(start)))

	return summary, nil
}

func (s *CompletionService) run(ctx context.Context, inputPath, outputPath string) (dataprocessing.Summary, dataprocessing.FillStatistics, error) {
	var stats dataprocessing.FillStatistics

	if inputPath == "" {
		return dataprocessing.Summary{}, stats, fmt.Errorf("input: %w", ErrEmptyPath)
	}
	if outputPath == "" {
		return dataprocessing.Summary{}, stats, fmt.Errorf("output: %w", ErrEmptyPath)
	}

	if err := s.validator.ValidateCSVFile(inputPath); err != nil {
		return dataprocessing.Summary{}, stats, err
	}

	table, err := dataprocessing.ParseCSVFile(inputPath)
	if err != nil {
		return dataprocessing.Summary{}, stats, err
	}
	s.logger.DebugContext(ctx, "Ranking sheet read",
		slog.String("input", inputPath),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Header)))

	if len(table.Header) > 0 {
		if err := validation.RequireColumns(table.Header, config.ColumnRanking, config.ColumnScore); err != nil {
			return dataprocessing.Summary{}, stats, fmt.Errorf("%s: %w", inputPath, err)
		}
	}

	completed, stats := s.processor.FillMissingDataWithStats(table)

	if err := s.validator.ValidateOutputDirectory(filepath.Dir(outputPath)); err != nil {
		return dataprocessing.Summary{}, stats, err
	}
	if err := s.writer.WriteTable(outputPath, completed); err != nil {
		return dataprocessing.Summary{}, stats, err
	}

	return dataprocessing.Summarize(completed.Records), stats, nil
}
