// Package ruleset loads audit rule parameters from a YAML file.
//
// A rule file is read-once input configuration for a run; nothing is ever
// written back. Omitted fields keep the values already in effect from the
// environment configuration, so a file can override just the bounds or just
// the pattern.
package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"salescheck/internal/schema"
)

// Ruleset mirrors the YAML rule file structure.
//
//	id_column: sale_id
//	amount:
//	  min: 2.50
//	  max: 1450.99
//	timestamp:
//	  pattern: "%Y-%m-%dT%H:%M:%S"
type Ruleset struct {
	IDColumn  string         `yaml:"id_column"`
	Amount    *AmountRule    `yaml:"amount"`
	Timestamp *TimestampRule `yaml:"timestamp"`
}

// AmountRule overrides the sale_amount range bounds.
type AmountRule struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// TimestampRule overrides the timestamp pattern.
type TimestampRule struct {
	Pattern string `yaml:"pattern"`
}

// Load reads and validates a rule file.
func Load(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file %s: %w", path, err)
	}

	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing rule file %s: %w", path, err)
	}

	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("rule file %s: %w", path, err)
	}

	return &rs, nil
}

// Validate checks the rule file for internal consistency.
func (r *Ruleset) Validate() error {
	if r.Amount != nil && r.Amount.Min != nil && r.Amount.Max != nil {
		if *r.Amount.Min > *r.Amount.Max {
			return fmt.Errorf("amount.min (%v) must be <= amount.max (%v)", *r.Amount.Min, *r.Amount.Max)
		}
	}
	if r.Timestamp != nil && r.Timestamp.Pattern == "" {
		return fmt.Errorf("timestamp.pattern must not be empty when timestamp is set")
	}
	return nil
}

// Apply overlays the rule file onto schema parameters, leaving unset fields
// untouched.
func (r *Ruleset) Apply(p schema.Params) schema.Params {
	if r.IDColumn != "" {
		p.IDColumn = r.IDColumn
	}
	if r.Amount != nil {
		if r.Amount.Min != nil {
			p.AmountMin = *r.Amount.Min
		}
		if r.Amount.Max != nil {
			p.AmountMax = *r.Amount.Max
		}
	}
	if r.Timestamp != nil && r.Timestamp.Pattern != "" {
		p.TimestampPattern = r.Timestamp.Pattern
	}
	return p
}
