package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"rankcli/internal/dataprocessing"
	"rankcli/internal/errors"
	"rankcli/internal/files"
)

// CSVWriter writes ranking tables as CSV files
type CSVWriter struct {
	files *files.Manager
	// UseCRLF terminates lines with \r\n, the convention of the original sheet tooling
	UseCRLF bool
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(manager *files.Manager) *CSVWriter {
	return &CSVWriter{files: manager, UseCRLF: true}
}

// WriteTable writes table to path, replacing any existing file only once the
// whole table has been written. The header is taken from the first record's
// columns; an empty table produces an empty file.
func (w *CSVWriter) WriteTable(path string, table *dataprocessing.Table) error {
	slog.Debug("Writing CSV file",
		slog.String("file_path", path),
		slog.Int("record_count", table.Len()))

	err := w.files.WriteFileAtomic(path, func(out io.Writer) error {
		return w.Encode(out, table)
	})
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to write %s", path), err).
			WithContext("path", path)
	}
	return nil
}

// Encode writes table as CSV to out
func (w *CSVWriter) Encode(out io.Writer, table *dataprocessing.Table) error {
	if table == nil || len(table.Records) == 0 {
		return nil
	}

	writer := csv.NewWriter(out)
	writer.UseCRLF = w.UseCRLF

	header := table.Records[0].Columns()
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(header))
	for i, record := range table.Records {
		for j, col := range header {
			row[j] = record.Get(col)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
