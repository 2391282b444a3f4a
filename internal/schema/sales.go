// Package schema declares the sales dataset columns and the built-in audit
// schema variants.
//
// The timestamp rules are deliberately two separate variants: one checks the
// format only, the other additionally asserts the parsed date is not in the
// future. Running them independently keeps the format failures and the
// semantic failures countable on their own.
package schema

import (
	"fmt"
	"time"

	"salescheck/internal/core"
)

// Sales dataset columns.
const (
	ColSaleID     = "sale_id"
	ColSaleAmount = "sale_amount"
	ColTimestamp  = "timestamp"
)

// Built-in schema variant keys.
const (
	KeyAmountRange     = "amount-range"
	KeyTimestampFormat = "timestamp-format"
	KeyTimestampSanity = "timestamp-sanity"
)

// Params configures the built-in schema variants.
type Params struct {
	AmountMin        float64
	AmountMax        float64
	TimestampPattern string
	IDColumn         string
	Now              func() time.Time // Reference clock for the sanity rule
}

// RegisterBuiltin builds the three built-in schema variants from the given
// parameters and adds them to the core registry.
func RegisterBuiltin(p Params) error {
	tsFormat, err := core.TimeFormat(p.TimestampPattern)
	if err != nil {
		return fmt.Errorf("building %s: %w", KeyTimestampFormat, err)
	}

	tsSanity, err := core.NotAfter(p.TimestampPattern, p.Now)
	if err != nil {
		return fmt.Errorf("building %s: %w", KeyTimestampSanity, err)
	}

	core.Register(core.Schema{
		Key:      KeyAmountRange,
		Label:    "Sale amount range",
		IDColumn: p.IDColumn,
		Fields: []core.FieldSpec{
			{Name: ColSaleAmount, Required: true, Rule: core.InRange(p.AmountMin, p.AmountMax)},
		},
	})

	core.Register(core.Schema{
		Key:      KeyTimestampFormat,
		Label:    "Timestamp format",
		IDColumn: p.IDColumn,
		Fields: []core.FieldSpec{
			{Name: ColTimestamp, Required: true, Rule: tsFormat},
		},
	})

	core.Register(core.Schema{
		Key:      KeyTimestampSanity,
		Label:    "Timestamp sanity",
		IDColumn: p.IDColumn,
		Fields: []core.FieldSpec{
			{Name: ColTimestamp, Required: true, Rule: tsSanity},
		},
	})

	return nil
}
