package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rankcli/internal/config"
	"rankcli/internal/dataprocessing"
	"rankcli/internal/files"
)

func TestWorkbookExporter_Export(t *testing.T) {
	base := t.TempDir()
	exporter := NewWorkbookExporter(files.NewManager(config.NewPaths(base)), nil)
	path := filepath.Join(base, "out", "universities.xlsx")

	sheets, err := exporter.Export(path, GroupByCountry(sampleCompletedTable().Records))
	require.NoError(t, err)
	assert.Equal(t, 4, sheets)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Japan", "United States", "Unknown", "China (Mainland)"}, f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 5)
	assert.Equal(t, []string{"Country", "Universities", "File", "Flag"}, summary[0])
	assert.Equal(t, []string{"Japan", "3", "Japan.json", "🇯🇵"}, summary[1])

	japan, err := f.GetRows("Japan")
	require.NoError(t, err)
	require.Len(t, japan, 4)
	assert.Equal(t, "University", japan[0][3])
	assert.Equal(t, "Kyoto", japan[1][3])
	assert.Equal(t, "Japan_3", japan[1][0])

	score, err := f.GetCellValue("Japan", "G4")
	require.NoError(t, err)
	assert.Equal(t, "3.5", score)
}

func TestWorkbookExporter_SheetNameClash(t *testing.T) {
	header := []string{"Rank", "University", "Country"}
	table := tableOf(header,
		[]string{"1", "A", "Summary"},
		[]string{"2", "B", "A/B"},
		[]string{"3", "C", "A B"},
	)

	exporter := NewWorkbookExporter(nil, nil)
	f, err := exporter.Build(GroupByCountry(table.Records))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Summary (2)", "A B", "A B (2)"}, f.GetSheetList())
}

func TestWorkbookExporter_Empty(t *testing.T) {
	exporter := NewWorkbookExporter(nil, nil)
	f, err := exporter.Build(GroupByCountry([]*dataprocessing.Record{}))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary"}, f.GetSheetList())
	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
