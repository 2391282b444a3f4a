// Package core provides the business logic for CSV data audits.
package core

import (
	"time"

	"salescheck/internal/csv"
)

// HeaderIndex maps column names (lowercase) to their position in the CSV row.
type HeaderIndex = csv.HeaderIndex

// Rule checks a single non-empty cell value.
// A nil return means the value passed; failures are returned as *RuleError.
type Rule func(value string) error

// FailureKind classifies a validation failure.
type FailureKind int

const (
	KindMissingColumn FailureKind = iota
	KindEmptyField
	KindFormat
	KindOutOfRange
	KindFutureDate
)

// String returns a human-readable name for a failure kind.
func (k FailureKind) String() string {
	switch k {
	case KindMissingColumn:
		return "missing-column"
	case KindEmptyField:
		return "empty-field"
	case KindFormat:
		return "format"
	case KindOutOfRange:
		return "out-of-range"
	case KindFutureDate:
		return "future-date"
	default:
		return "unknown"
	}
}

// RuleError describes why a value failed a rule.
type RuleError struct {
	Kind    FailureKind
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// FieldSpec defines validation rules for a single CSV column.
type FieldSpec struct {
	Name       string // Column header name (matched case-insensitively)
	Required   bool   // Column must exist in CSV header
	AllowEmpty bool   // If true, empty values are allowed even when Required
	Rule       Rule   // Optional check applied to non-empty values
}

// Schema is a named set of per-field rules applied to a dataset.
// Multiple schema variants can audit the same dataset independently.
type Schema struct {
	Key      string // Unique identifier: "amount-range"
	Label    string // Display name: "Sale amount range"
	IDColumn string // Column used as the row identifier in diagnostics
	Fields   []FieldSpec
}

// RequiredColumns returns the names of all required fields.
func (s Schema) RequiredColumns() []string {
	var cols []string
	for _, f := range s.Fields {
		if f.Required {
			cols = append(cols, f.Name)
		}
	}
	return cols
}

// RowFailure records every validation error found on one row.
type RowFailure struct {
	RowID  string // Value of the schema's id column, or the CSV line number
	Line   int    // 1-based CSV line number
	Errors []ValidationError
}

// Report is the outcome of running one schema variant over a dataset.
type Report struct {
	SchemaKey   string
	RunID       string
	AsOf        time.Time // Reference time injected into temporal rules
	RowsChecked int
	RowsFailed  int
	Failures    []RowFailure
}
