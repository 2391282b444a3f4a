package core

// audit.go runs schema variants over a loaded dataset.
//
// The flow mirrors the validation loop of a batch import: load once, walk
// every data row, log a warning per failure, and keep a running count. Rows
// are never mutated or quarantined; a failing row is counted and the audit
// continues. Whether to act on findings is left to the operator.

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"salescheck/internal/csv"
	"salescheck/internal/logging"
)

// ContextCheckInterval is how often (in rows) to check for context cancellation.
// Checking every row would be expensive; checking periodically balances
// responsiveness with performance.
var ContextCheckInterval = 100

// Dataset is a CSV table loaded once and auditable by any number of schemas.
type Dataset struct {
	Path       string
	Header     []string
	HeaderLine int // 1-based CSV line of the header row
	Rows       [][]string
}

// LoadDataset reads a CSV file and locates the header row containing the
// given required columns. Rows above the header (report titles, export
// timestamps) are discarded.
func LoadDataset(path string, required []string) (*Dataset, error) {
	rows, err := csv.Read(path)
	if err != nil {
		return nil, err
	}

	headerIdx, err := csv.FindHeaderRow(rows, required)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	data := rows[headerIdx+1:]
	if len(data) == 0 {
		return nil, fmt.Errorf("no rows found after header in csv %s", path)
	}

	return &Dataset{
		Path:       path,
		Header:     rows[headerIdx],
		HeaderLine: headerIdx + 1,
		Rows:       data,
	}, nil
}

// Auditor runs schema variants over a dataset, logging and counting failures.
//
// AsOf is the reference time recorded in reports. Temporal rules receive it
// at schema build time, so the same dataset audited with two different AsOf
// values may legitimately produce different counts.
type Auditor struct {
	AsOf time.Time
}

// Run validates every data row against the schema and returns a report.
// Header-level problems (missing required columns) fail the run itself;
// row-level failures are logged at warn severity and counted, never fatal.
func (a *Auditor) Run(ctx context.Context, ds *Dataset, schema Schema) (*Report, error) {
	runID := uuid.NewString()
	ctx = logging.ContextWithRunID(ctx, runID)
	logger := logging.FromContext(ctx).With("schema", schema.Key, "file", ds.Path)

	headerIdx, err := ValidateHeaders(ds.Header, schema)
	if err != nil {
		return nil, fmt.Errorf("header validation for %s: %w", schema.Key, err)
	}

	validator := NewRowValidator(schema, headerIdx)
	report := &Report{
		SchemaKey: schema.Key,
		RunID:     runID,
		AsOf:      a.AsOf,
	}

	for i, row := range ds.Rows {
		// CSV line number (1-indexed for user-friendly display)
		line := ds.HeaderLine + i + 1

		// Check context periodically to allow cancellation
		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("audit cancelled at line %d: %w", line, err)
			}
		}

		// Skip fully empty rows
		empty := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		report.RowsChecked++

		result := validator.ValidateRow(row)
		if result.Valid {
			continue
		}

		rowID := csv.Cell(row, headerIdx, schema.IDColumn)
		if rowID == "" {
			rowID = strconv.Itoa(line)
		}

		for _, e := range result.Errors {
			logger.Warn(
				fmt.Sprintf("issue with sale: %s (%s) - %s", rowID, e.Value, e.Message),
				"field", e.Field,
				"kind", e.Kind.String(),
				"line", line,
			)
		}

		report.RowsFailed++
		report.Failures = append(report.Failures, RowFailure{
			RowID:  rowID,
			Line:   line,
			Errors: result.Errors,
		})
	}

	logger.Info("audit complete",
		"rows_checked", report.RowsChecked,
		"rows_failed", report.RowsFailed,
	)

	return report, nil
}
