package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankcli/internal/config"
	"rankcli/internal/dataprocessing"
	apperrors "rankcli/internal/errors"
	"rankcli/internal/files"
)

func newTestWriter(t *testing.T) (*CSVWriter, string) {
	t.Helper()
	base := t.TempDir()
	return NewCSVWriter(files.NewManager(config.NewPaths(base))), base
}

func tableOf(header []string, rows ...[]string) *dataprocessing.Table {
	table := &dataprocessing.Table{Header: header}
	for _, row := range rows {
		table.Records = append(table.Records, dataprocessing.NewRecord(header, row))
	}
	return table
}

func TestCSVWriter_Encode(t *testing.T) {
	w := NewCSVWriter(nil)
	table := tableOf([]string{"Rank", "University", "Score"},
		[]string{"1", "Imperial College, London", "99.4"},
		[]string{"2", `The "Best" School`, "-"},
	)

	var buf bytes.Buffer
	require.NoError(t, w.Encode(&buf, table))

	want := "Rank,University,Score\r\n" +
		"1,\"Imperial College, London\",99.4\r\n" +
		"2,\"The \"\"Best\"\" School\",-\r\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVWriter_EncodeLF(t *testing.T) {
	w := NewCSVWriter(nil)
	w.UseCRLF = false

	var buf bytes.Buffer
	require.NoError(t, w.Encode(&buf, tableOf([]string{"A"}, []string{"1"})))
	assert.Equal(t, "A\n1\n", buf.String())
}

func TestCSVWriter_EncodeUsesFirstRecordColumns(t *testing.T) {
	w := NewCSVWriter(nil)
	first := dataprocessing.NewRecord([]string{"A", "B"}, []string{"1", "2"})
	second := dataprocessing.NewRecord([]string{"B", "A"}, []string{"4", "3"})
	table := &dataprocessing.Table{Header: []string{"ignored"}, Records: []*dataprocessing.Record{first, second}}

	var buf bytes.Buffer
	require.NoError(t, w.Encode(&buf, table))
	assert.Equal(t, "A,B\r\n1,2\r\n3,4\r\n", buf.String())
}

func TestCSVWriter_WriteTable(t *testing.T) {
	w, base := newTestWriter(t)
	table := tableOf([]string{"University", "Ranking", "Score"}, []string{"X", "1201-1400", "3.5"})

	require.NoError(t, w.WriteTable("assets/Ranking - Sheet1-completed.csv", table))

	got, err := os.ReadFile(filepath.Join(base, "assets", "Ranking - Sheet1-completed.csv"))
	require.NoError(t, err)
	assert.Equal(t, "University,Ranking,Score\r\nX,1201-1400,3.5\r\n", string(got))
	assert.False(t, bytes.HasPrefix(got, []byte("\xef\xbb\xbf")), "no byte order mark")
}

func TestCSVWriter_WriteTable_Empty(t *testing.T) {
	w, base := newTestWriter(t)
	path := filepath.Join(base, "out.csv")

	require.NoError(t, w.WriteTable(path, &dataprocessing.Table{Header: []string{"Ranking", "Score"}}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestCSVWriter_WriteTable_RoundTrip(t *testing.T) {
	w, base := newTestWriter(t)
	path := filepath.Join(base, "round.csv")
	table := tableOf([]string{"University", "Ranking", "Score", "Country"},
		[]string{"A, Inc", "5", "80.1", "Japan"},
		[]string{"B\nMultiline", "6-8", "-", ""},
	)

	require.NoError(t, w.WriteTable(path, table))

	parsed, err := dataprocessing.ParseCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, table.Header, parsed.Header)
	require.Equal(t, table.Len(), parsed.Len())
	for i := range table.Records {
		assert.Equal(t, table.Records[i].Values(), parsed.Records[i].Values())
	}
}

func TestCSVWriter_WriteTable_Unwritable(t *testing.T) {
	w, base := newTestWriter(t)
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := w.WriteTable(filepath.Join(blocker, "out.csv"), tableOf([]string{"A"}, []string{"1"}))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))
	assert.True(t, strings.Contains(err.Error(), "out.csv"))
}
