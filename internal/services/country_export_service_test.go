package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/trace/noop"

	"rankcli/internal/config"
	apperrors "rankcli/internal/errors"
	"rankcli/internal/files"
	"rankcli/pkg/contracts/domain"
)

const completedSheet = "Rank,University,Code,Ranking,Score,Country,Region,Start Date,End Date\r\n" +
	"1,MIT,MIT,1,100,United States,Americas,2024-09-01,2025-06-30\r\n" +
	"28,Tokyo,UT,28,83.4,Japan,Asia,2024-09-01,2025-06-30\r\n" +
	"5,Kyoto,KU,5,93.0,Japan,Asia,2024-09-01,2025-06-30\r\n"

func newCountryExportService(t *testing.T, base string) *CountryExportService {
	t.Helper()
	svc, err := NewCountryExportService(files.NewManager(config.NewPaths(base)), noop.NewTracerProvider().Tracer("test"), nil, discardLogger())
	require.NoError(t, err)
	return svc
}

func TestCountryExportService_Run(t *testing.T) {
	base := t.TempDir()
	in := filepath.Join(base, "completed.csv")
	outDir := filepath.Join(base, "data", "university_data")
	workbook := filepath.Join(base, "exports", "universities.xlsx")
	writeFile(t, in, completedSheet)

	result, err := newCountryExportService(t, base).Run(context.Background(), in, outDir, workbook)
	require.NoError(t, err)
	assert.Equal(t, CountryExportResult{Countries: 2, Universities: 3, JSONFiles: 3, WorkbookSheets: 2}, result)

	raw, err := os.ReadFile(filepath.Join(outDir, "summary.json"))
	require.NoError(t, err)
	var summary domain.CountrySummary
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.Equal(t, "Japan", summary.Countries[0].Name)
	assert.Equal(t, 2, summary.Countries[0].Count)

	raw, err = os.ReadFile(filepath.Join(outDir, "Japan.json"))
	require.NoError(t, err)
	var japan domain.CountryData
	require.NoError(t, json.Unmarshal(raw, &japan))
	assert.Equal(t, "Kyoto", japan.Universities[0].Name)
	assert.Equal(t, 93.0, japan.Universities[0].Score)

	f, err := excelize.OpenFile(workbook)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "United States", "Japan"}, f.GetSheetList())
}

func TestCountryExportService_Run_WithoutWorkbook(t *testing.T) {
	base := t.TempDir()
	in := filepath.Join(base, "completed.csv")
	writeFile(t, in, completedSheet)

	result, err := newCountryExportService(t, base).Run(context.Background(), in, filepath.Join(base, "out"), "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.WorkbookSheets)
	assert.Equal(t, 3, result.JSONFiles)
}

func TestCountryExportService_Run_Errors(t *testing.T) {
	base := t.TempDir()
	in := filepath.Join(base, "completed.csv")
	writeFile(t, in, completedSheet)
	svc := newCountryExportService(t, base)

	_, err := svc.Run(context.Background(), filepath.Join(base, "missing.csv"), filepath.Join(base, "out"), "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))

	_, err = svc.Run(context.Background(), in, filepath.Join(base, "out"), filepath.Join(base, "book.csv"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.NoDirExists(t, filepath.Join(base, "out"), "nothing is written when the workbook path is invalid")

	_, err = svc.Run(context.Background(), in, "", "")
	assert.ErrorIs(t, err, ErrEmptyPath)
}
