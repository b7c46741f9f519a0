package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"rankcli/internal/config"
	"rankcli/internal/dataprocessing"
	"rankcli/internal/exporter"
	"rankcli/internal/files"
	"rankcli/internal/infrastructure"
	"rankcli/internal/validation"
)

// CountryExportResult reports what a country export produced
type CountryExportResult struct {
	Countries      int
	Universities   int
	JSONFiles      int
	WorkbookSheets int
}

// CountryExportService regroups a completed sheet by country and publishes
// it as JSON files and, optionally, an xlsx workbook
type CountryExportService struct {
	validator *validation.FileValidator
	json      *exporter.CountryExporter
	workbook  *exporter.WorkbookExporter
	tracer    trace.Tracer
	metrics   *infrastructure.RunMetrics
	logger    *slog.Logger
}

// NewCountryExportService creates a country export service. metrics may be nil.
func NewCountryExportService(manager *files.Manager, tracer trace.Tracer, metrics *infrastructure.RunMetrics, logger *slog.Logger) (*CountryExportService, error) {
	if tracer == nil {
		return nil, ErrNilTelemetry
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = infrastructure.WithComponent(logger, "country_export")

	return &CountryExportService{
		validator: validation.NewFileValidator(logger),
		json:      exporter.NewCountryExporter(manager, config.ExportWorkers, logger),
		workbook:  exporter.NewWorkbookExporter(manager, logger),
		tracer:    tracer,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// Run reads the completed sheet at inputPath, writes the country files into
// outputDir and, when workbookPath is set, the workbook
func (s *CountryExportService) Run(ctx context.Context, inputPath, outputDir, workbookPath string) (CountryExportResult, error) {
	start := time.Now()
	ctx = infrastructure.EnsureTraceID(ctx)

	ctx, span := s.tracer.Start(ctx, "rankfill.country_export",
		trace.WithAttributes(
			attribute.String("rankfill.input", inputPath),
			attribute.String("rankfill.output_dir", outputDir),
		))
	defer span.End()

	result, err := s.run(ctx, inputPath, outputDir, workbookPath)
	s.metrics.RecordRun(ctx, "countryjson", time.Since(start), err)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		s.logger.ErrorContext(ctx, "Country export failed",
			slog.String("input", inputPath),
			infrastructure.ErrorAttr(err))
		return CountryExportResult{}, err
	}

	span.SetAttributes(
		attribute.Int("rankfill.countries", result.Countries),
		attribute.Int("rankfill.universities", result.Universities),
	)
	return result, nil
}

func (s *CountryExportService) run(ctx context.Context, inputPath, outputDir, workbookPath string) (CountryExportResult, error) {
	var result CountryExportResult

	if inputPath == "" {
		return result, fmt.Errorf("input: %w", ErrEmptyPath)
	}
	if outputDir == "" {
		return result, fmt.Errorf("output directory: %w", ErrEmptyPath)
	}

	if err := s.validator.ValidateCSVFile(inputPath); err != nil {
		return result, err
	}
	if workbookPath != "" {
		if err := s.validator.ValidateWorkbookPath(workbookPath); err != nil {
			return result, err
		}
	}

	table, err := dataprocessing.ParseCSVFile(inputPath)
	if err != nil {
		return result, err
	}

	export := exporter.GroupByCountry(table.Records)
	result.Countries = export.Summary.TotalCountries
	result.Universities = export.Summary.TotalUniversities

	written, err := s.json.ExportJSON(ctx, outputDir, export)
	if err != nil {
		return result, err
	}
	result.JSONFiles = written
	s.metrics.RecordCountryFiles(ctx, "json", written)

	if workbookPath != "" {
		sheets, err := s.workbook.Export(workbookPath, export)
		if err != nil {
			return result, err
		}
		result.WorkbookSheets = sheets
		s.metrics.RecordCountryFiles(ctx, "xlsx", 1)
	}

	return result, nil
}
