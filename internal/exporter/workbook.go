package exporter

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"rankcli/internal/config"
	"rankcli/internal/errors"
	"rankcli/internal/files"
)

var (
	summaryHeaders    = []any{"Country", "Universities", "File", "Flag"}
	universityHeaders = []any{"ID", "Rank", "Ranking", "University", "Code", "Country", "Score", "Region", "Start Date", "End Date"}
)

// WorkbookExporter writes the country grouping as a single xlsx workbook:
// a Summary sheet followed by one sheet per country
type WorkbookExporter struct {
	files  *files.Manager
	logger *slog.Logger
}

// NewWorkbookExporter creates a new workbook exporter
func NewWorkbookExporter(manager *files.Manager, logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{files: manager, logger: logger}
}

// Export builds the workbook and writes it to path.
// It returns the number of country sheets.
func (e *WorkbookExporter) Export(path string, export *CountryExport) (int, error) {
	f, err := e.Build(export)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	err = e.files.WriteFileAtomic(path, func(w io.Writer) error {
		return f.Write(w)
	})
	if err != nil {
		return 0, errors.NewIOError(fmt.Sprintf("failed to write %s", path), err).
			WithContext("path", path)
	}

	e.logger.Info("Workbook export complete",
		slog.String("file", path),
		slog.Int("sheets", len(export.Countries)+1))

	return len(export.Countries), nil
}

// Build creates the workbook in memory. The caller must Close it.
func (e *WorkbookExporter) Build(export *CountryExport) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, errors.NewStorageError("failed to create header style", err)
	}

	if err := f.SetSheetName("Sheet1", config.SummarySheetName); err != nil {
		f.Close()
		return nil, errors.NewStorageError("failed to name summary sheet", err)
	}

	rows := make([][]any, 0, len(export.Summary.Countries))
	for _, entry := range export.Summary.Countries {
		rows = append(rows, []any{entry.Name, entry.Count, entry.FileName, entry.Flag})
	}
	if err := writeSheet(f, config.SummarySheetName, summaryHeaders, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	taken := map[string]bool{}
	taken[strings.ToLower(config.SummarySheetName)] = true

	for _, data := range export.Countries {
		name := uniqueSheetName(data.Country, taken)
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, errors.NewStorageError(fmt.Sprintf("failed to add sheet %q", name), err)
		}

		rows := make([][]any, 0, len(data.Universities))
		for _, u := range data.Universities {
			rows = append(rows, []any{
				u.ID, u.Rank, u.Ranking, u.Name, u.Code, u.Country,
				u.Score, u.Region, u.StartDate, u.EndDate,
			})
		}
		if err := writeSheet(f, name, universityHeaders, rows, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// writeSheet writes a bold, frozen header row followed by rows
func writeSheet(f *excelize.File, sheet string, headers []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write header of %q", sheet), err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to style header of %q", sheet), err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to freeze header of %q", sheet), err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError("invalid cell reference", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write row %d of %q", i+2, sheet), err)
		}
	}
	return nil
}
