// Package csv handles reading and cleaning CSV files before validation.
//
// Exported CSVs are rarely pristine: spreadsheets add UTF-8 BOMs, wrap cells
// in Excel formula syntax (="value"), and prepend report titles above the real
// header row. This package normalizes all of that so the validation layer only
// ever sees clean cells and a known header position.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// HeaderIndex maps cleaned column names (lowercase) to their position in a row.
type HeaderIndex map[string]int

// Read loads all records from a CSV file.
// Rows with varying field counts are tolerated; validation handles short rows.
func Read(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow ragged rows

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file: %s", path)
	}
	return rows, nil
}

// FindHeaderRow returns the index of the first row that contains every
// required column (case-insensitive, after cleaning). Spreadsheet exports
// often carry title or date rows above the real header.
func FindHeaderRow(rows [][]string, required []string) (int, error) {
	for i, row := range rows {
		idx := MakeHeaderIndex(row)
		found := true
		for _, col := range required {
			if _, ok := idx[strings.ToLower(col)]; !ok {
				found = false
				break
			}
		}
		if found {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no header row containing columns: %s", strings.Join(required, ", "))
}

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// This should be called once per file, then reused for all rows.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[CleanHeader(h)] = i
	}
	return idx
}

// CleanCell strips common CSV artifacts from a cell value:
// UTF-8 BOM, surrounding whitespace, and Excel formula wrapping (="value").
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.TrimSpace(s)

	// Excel exports sometimes force text cells with ="value"
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}

	return strings.TrimSpace(s)
}

// CleanHeader cleans a header cell and lowercases it for case-insensitive
// column matching.
func CleanHeader(s string) string {
	return strings.ToLower(CleanCell(s))
}

// Cell returns the cleaned value of a named column in a row, or "" when the
// column is absent or the row is too short.
func Cell(row []string, idx HeaderIndex, name string) string {
	pos, ok := idx[strings.ToLower(name)]
	if !ok || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}
