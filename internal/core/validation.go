package core

// validation.go provides row-level validation against an audit schema.
//
// Validation happens at two levels:
//  1. Header validation: Ensures required columns are present
//  2. Row validation: Checks each cell against its FieldSpec's rule
//
// The RowValidator returns all errors for a row so a single pass can report
// every problem. Validation errors include the field name, the invalid value,
// and a human-readable message; rows are never mutated.

import (
	"fmt"
	"strings"

	"salescheck/internal/csv"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string      // Field/column name
	Value   string      // The invalid value
	Message string      // Human-readable error message
	Kind    FailureKind // Failure classification
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationResult contains the result of validating a row.
type ValidationResult struct {
	Valid  bool              // True if all validations passed
	Errors []ValidationError // List of validation errors (empty if Valid)
}

// RowValidator validates rows against a schema's field specifications.
type RowValidator struct {
	schema    Schema
	headerIdx HeaderIndex
}

// NewRowValidator creates a validator for the given schema and header index.
func NewRowValidator(schema Schema, headerIdx HeaderIndex) *RowValidator {
	return &RowValidator{
		schema:    schema,
		headerIdx: headerIdx,
	}
}

// ValidateRow validates a single CSV row and returns all validation errors.
func (v *RowValidator) ValidateRow(row []string) ValidationResult {
	result := ValidationResult{Valid: true}

	for _, spec := range v.schema.Fields {
		pos, ok := v.headerIdx[strings.ToLower(spec.Name)]
		if !ok || pos >= len(row) {
			if spec.Required {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   spec.Name,
					Message: "missing required column",
					Kind:    KindMissingColumn,
				})
			}
			continue
		}

		raw := csv.CleanCell(row[pos])

		if raw == "" {
			if spec.Required && !spec.AllowEmpty {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   spec.Name,
					Message: "required field is empty",
					Kind:    KindEmptyField,
				})
			}
			continue
		}

		if spec.Rule == nil {
			continue
		}

		if err := spec.Rule(raw); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   spec.Name,
				Value:   raw,
				Message: err.Error(),
				Kind:    ruleKind(err),
			})
		}
	}

	return result
}

// ValidateRowFirst validates a row and returns the first error only.
// This is more efficient when only pass/fail is needed.
func (v *RowValidator) ValidateRowFirst(row []string) error {
	for _, spec := range v.schema.Fields {
		pos, ok := v.headerIdx[strings.ToLower(spec.Name)]
		if !ok || pos >= len(row) {
			if spec.Required {
				return fmt.Errorf("missing required column %q", spec.Name)
			}
			continue
		}

		raw := csv.CleanCell(row[pos])

		if raw == "" {
			if spec.Required && !spec.AllowEmpty {
				return fmt.Errorf("empty required field %q", spec.Name)
			}
			continue
		}

		if spec.Rule == nil {
			continue
		}

		if err := spec.Rule(raw); err != nil {
			return fmt.Errorf("invalid value for %q: %w", spec.Name, err)
		}
	}
	return nil
}

// ValidateHeaders validates that all required columns exist in the CSV headers.
// Returns a mapping from column name to index, or an error listing missing columns.
func ValidateHeaders(headers []string, schema Schema) (HeaderIndex, error) {
	idx := csv.MakeHeaderIndex(headers)
	var missing []string

	for _, spec := range schema.Fields {
		if spec.Required {
			key := strings.ToLower(spec.Name)
			if _, ok := idx[key]; !ok {
				missing = append(missing, spec.Name)
			}
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return idx, nil
}

// ruleKind extracts the failure classification from a rule error.
func ruleKind(err error) FailureKind {
	if re, ok := err.(*RuleError); ok {
		return re.Kind
	}
	return KindFormat
}
