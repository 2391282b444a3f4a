// Package config provides centralized configuration management for the
// auditor. It loads configuration from environment variables with sensible
// defaults and validates all settings on startup to fail fast on
// misconfiguration. CLI flags may override individual values after loading.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Data    DataConfig
	Rules   RulesConfig
	Logging LoggingConfig
}

// DataConfig holds dataset input settings.
type DataConfig struct {
	// File is the path to the sales CSV to audit (default: data/sales.csv)
	File string `env:"SALES_FILE" default:"data/sales.csv"`

	// IDColumn is the column used as the row identifier in diagnostics
	// (default: sale_id). Falls back to the CSV line number when absent.
	IDColumn string `env:"SALES_ID_COLUMN" default:"sale_id"`
}

// RulesConfig holds the default rule parameters for the built-in schemas.
type RulesConfig struct {
	// AmountMin is the inclusive lower bound for sale_amount (default: 2.50)
	AmountMin float64 `env:"RULE_AMOUNT_MIN" default:"2.50"`

	// AmountMax is the inclusive upper bound for sale_amount (default: 1450.99)
	AmountMax float64 `env:"RULE_AMOUNT_MAX" default:"1450.99"`

	// TimestampPattern is the expected timestamp format, C-style or Go layout
	// (default: %Y-%m-%dT%H:%M:%S)
	TimestampPattern string `env:"RULE_TIMESTAMP_PATTERN" default:"%Y-%m-%dT%H:%M:%S"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
