package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"rankcli/internal/errors"
)

const utf8BOM = "\ufeff"

// ParseCSV reads a ranking sheet with a header row.
//
// An empty input yields an empty table without a header. Rows shorter than
// the header are padded with empty cells; longer rows are a parsing error.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, errors.NewParsingError("failed to read header", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	table := &Table{Header: header}
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError("failed to read row", err)
		}
		if len(cells) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, errors.NewParsingError(
				fmt.Sprintf("line %d has %d fields, header has %d", line, len(cells), len(header)), nil).
				WithContext("line", line)
		}
		table.Records = append(table.Records, NewRecord(header, cells))
	}

	return table, nil
}

// ParseCSVFile opens path and parses it with ParseCSV
func ParseCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("failed to open %s", path), err).
			WithContext("path", path)
	}
	defer f.Close()

	table, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, nil
}
