package exporter

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"rankcli/internal/config"
	"rankcli/internal/dataprocessing"
	"rankcli/internal/errors"
	"rankcli/internal/files"
	"rankcli/pkg/contracts/domain"
)

// CountryExport is a completed sheet grouped by country
type CountryExport struct {
	// Countries in order of first appearance in the sheet
	Countries []*domain.CountryData
	Summary   *domain.CountrySummary
	// FileNames maps each country to its JSON file name, unique within the export
	FileNames map[string]string
}

// GroupByCountry groups completed records by their Country column.
// Rows without a country are grouped under config.UnknownCountry.
func GroupByCountry(records []*dataprocessing.Record) *CountryExport {
	countryOf := func(r *dataprocessing.Record) string {
		if country := strings.TrimSpace(r.Get(config.ColumnCountry)); country != "" {
			return country
		}
		return config.UnknownCountry
	}

	grouped := lo.GroupBy(records, countryOf)
	order := lo.Uniq(lo.Map(records, func(r *dataprocessing.Record, _ int) string { return countryOf(r) }))

	export := &CountryExport{
		Countries: make([]*domain.CountryData, 0, len(order)),
		Summary:   &domain.CountrySummary{TotalCountries: len(order), TotalUniversities: len(records)},
		FileNames: make(map[string]string, len(order)),
	}
	takenFiles := map[string]bool{strings.ToLower(config.CountrySummaryFile): true}

	for _, country := range order {
		universities := lo.Map(grouped[country], func(r *dataprocessing.Record, i int) domain.University {
			return toUniversity(r, country, i+1)
		})
		// ids follow sheet order; the file lists by rank
		slices.SortStableFunc(universities, func(a, b domain.University) int {
			return cmp.Compare(a.Rank, b.Rank)
		})

		fileName := uniqueFileName(country, takenFiles)
		export.FileNames[country] = fileName
		export.Countries = append(export.Countries, domain.NewCountryData(country, universities))
		export.Summary.Countries = append(export.Summary.Countries, domain.CountryEntry{
			Name:     country,
			Count:    len(universities),
			FileName: fileName,
			Flag:     domain.CountryFlag(country),
		})
	}

	slices.SortStableFunc(export.Summary.Countries, func(a, b domain.CountryEntry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return export
}

// fileName returns the file a country is written to. Exports assembled by
// hand without FileNames fall back to the plain country file name.
func (e *CountryExport) fileName(country string) string {
	if name, ok := e.FileNames[country]; ok {
		return name
	}
	return domain.CountryFileName(country)
}

func toUniversity(r *dataprocessing.Record, country string, n int) domain.University {
	return domain.University{
		ID:        fmt.Sprintf("%s_%d", country, n),
		Rank:      domain.LeadingInt(r.Get(config.ColumnRank)),
		Ranking:   r.Get(config.ColumnRanking),
		Name:      r.Get(config.ColumnUniversity),
		Code:      r.Get(config.ColumnCode),
		Country:   country,
		Score:     domain.LeadingFloat(r.Get(config.ColumnScore)),
		Region:    r.Get(config.ColumnRegion),
		StartDate: r.Get(config.ColumnStartDate),
		EndDate:   r.Get(config.ColumnEndDate),
	}
}

// CountryExporter writes one JSON file per country plus a summary file
type CountryExporter struct {
	files   *files.Manager
	workers int
	logger  *slog.Logger
}

// NewCountryExporter creates a country exporter writing at most workers files at a time
func NewCountryExporter(manager *files.Manager, workers int, logger *slog.Logger) *CountryExporter {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CountryExporter{files: manager, workers: workers, logger: logger}
}

// ExportJSON writes every country file and then summary.json into dir.
// It returns the number of files written, summary included.
func (e *CountryExporter) ExportJSON(ctx context.Context, dir string, export *CountryExport) (int, error) {
	if err := e.files.EnsureDirectory(dir); err != nil {
		return 0, errors.NewIOError(fmt.Sprintf("failed to create %s", dir), err).
			WithContext("directory", dir)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, data := range export.Countries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := data.Validate(); err != nil {
				return errors.NewValidationError(err.Error()).WithContext("country", data.Country)
			}
			path := filepath.Join(dir, export.fileName(data.Country))
			if err := e.writeJSON(path, data); err != nil {
				return err
			}
			e.logger.DebugContext(ctx, "Generated country file",
				slog.String("file", path),
				slog.Int("universities", data.TotalUniversities))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := export.Summary.Validate(); err != nil {
		return 0, errors.NewValidationError(err.Error())
	}
	if err := e.writeJSON(filepath.Join(dir, config.CountrySummaryFile), export.Summary); err != nil {
		return 0, err
	}

	written := len(export.Countries) + 1
	e.logger.InfoContext(ctx, "Country export complete",
		slog.String("directory", dir),
		slog.Int("countries", export.Summary.TotalCountries),
		slog.Int("universities", export.Summary.TotalUniversities),
		slog.Int("files", written))

	return written, nil
}

func (e *CountryExporter) writeJSON(path string, v any) error {
	err := e.files.WriteFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	})
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to write %s", path), err).
			WithContext("path", path)
	}
	return nil
}
