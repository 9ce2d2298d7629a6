package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
)

// Row is one parsed record, keyed by header column name.
type Row map[string]string

// parseTable reads delimited text into header-keyed rows. The first row names
// the columns; blank lines are skipped; malformed rows are dropped rather than
// failing the table; short rows keep the columns they have.
func parseTable(data []byte) []Row {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil
	}

	var rows []Row
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed row: drop it and keep going.
			continue
		}
		if len(record) == 0 {
			continue
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
