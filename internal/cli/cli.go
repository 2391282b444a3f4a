// Package cli wires the command-line surface of the auditor.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"salescheck/internal/config"
	"salescheck/internal/core"
	"salescheck/internal/ruleset"
	"salescheck/internal/schema"
)

// asOfLayouts are the accepted formats for the --as-of flag.
var asOfLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// New builds the root command.
func New(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "salescheck",
		Usage: "Audit a sales CSV against named validation schemas",
		Commands: []*cli.Command{
			validateCmd(cfg),
			schemasCmd(cfg),
		},
	}
}

func validateCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Run schema variants over a sales CSV and report failure counts",
		Description: `Loads the CSV once, then runs each selected schema variant over every
data row. Each failing row is logged at warning severity and counted;
failures never stop the run. The final count per variant is printed to
stdout.

Invalid rows are data findings, not tool errors: the exit code is zero
unless the file cannot be read or a required column is missing.

# Examples

Audit the default file with every built-in schema:
  salescheck validate

Audit one variant with custom bounds:
  salescheck validate --schema amount-range --min 10 --max 500

Pin the reference time for the future-date check:
  salescheck validate --schema timestamp-sanity --as-of 2024-06-01T00:00:00Z

Override rule parameters from a YAML file:
  salescheck validate --rules rules.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the sales CSV to audit",
				Value:   cfg.Data.File,
			},
			&cli.StringFlag{
				Name:    "schema",
				Aliases: []string{"s"},
				Usage:   "Schema variant key to run, or \"all\"",
				Value:   "all",
			},
			&cli.StringFlag{
				Name:  "rules",
				Usage: "Path to a YAML rule file overriding bounds/pattern",
			},
			&cli.StringFlag{
				Name:  "as-of",
				Usage: "Reference time for the future-date check (RFC3339); defaults to now",
			},
			&cli.FloatFlag{
				Name:  "min",
				Usage: "Inclusive lower bound for sale_amount",
				Value: cfg.Rules.AmountMin,
			},
			&cli.FloatFlag{
				Name:  "max",
				Usage: "Inclusive upper bound for sale_amount",
				Value: cfg.Rules.AmountMax,
			},
			&cli.StringFlag{
				Name:  "pattern",
				Usage: "Timestamp format, C-style (%Y-%m-%dT%H:%M:%S) or Go layout",
				Value: cfg.Rules.TimestampPattern,
			},
			&cli.StringFlag{
				Name:  "id-column",
				Usage: "Column used as the row identifier in diagnostics",
				Value: cfg.Data.IDColumn,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runValidate(ctx, cfg, cmd)
		},
	}
}

func runValidate(ctx context.Context, cfg *config.Config, cmd *cli.Command) error {
	params := schema.Params{
		AmountMin:        cfg.Rules.AmountMin,
		AmountMax:        cfg.Rules.AmountMax,
		TimestampPattern: cfg.Rules.TimestampPattern,
		IDColumn:         cfg.Data.IDColumn,
	}

	// Rule file first, then explicit flags on top.
	if path := cmd.String("rules"); path != "" {
		rs, err := ruleset.Load(path)
		if err != nil {
			return err
		}
		params = rs.Apply(params)
	}
	if cmd.IsSet("min") {
		params.AmountMin = cmd.Float("min")
	}
	if cmd.IsSet("max") {
		params.AmountMax = cmd.Float("max")
	}
	if cmd.IsSet("pattern") {
		params.TimestampPattern = cmd.String("pattern")
	}
	if cmd.IsSet("id-column") {
		params.IDColumn = cmd.String("id-column")
	}

	if params.AmountMin > params.AmountMax {
		return fmt.Errorf("min (%v) must be <= max (%v)", params.AmountMin, params.AmountMax)
	}

	asOf, err := parseAsOf(cmd.String("as-of"))
	if err != nil {
		return err
	}
	params.Now = func() time.Time { return asOf }

	if err := schema.RegisterBuiltin(params); err != nil {
		return err
	}

	schemas, err := selectSchemas(cmd.String("schema"))
	if err != nil {
		return err
	}

	dataset, err := core.LoadDataset(cmd.String("file"), requiredColumns(schemas))
	if err != nil {
		return err
	}

	auditor := &core.Auditor{AsOf: asOf}
	for _, s := range schemas {
		report, err := auditor.Run(ctx, dataset, s)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.Root().Writer, "%s: %d of %d rows failed\n",
			report.SchemaKey, report.RowsFailed, report.RowsChecked)
	}

	return nil
}

func schemasCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "schemas",
		Usage: "List the registered schema variants",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			err := schema.RegisterBuiltin(schema.Params{
				AmountMin:        cfg.Rules.AmountMin,
				AmountMax:        cfg.Rules.AmountMax,
				TimestampPattern: cfg.Rules.TimestampPattern,
				IDColumn:         cfg.Data.IDColumn,
				Now:              time.Now,
			})
			if err != nil {
				return err
			}

			for _, s := range core.All() {
				fmt.Fprintf(cmd.Root().Writer, "%-18s %s (columns: %s)\n",
					s.Key, s.Label, strings.Join(s.RequiredColumns(), ", "))
			}
			return nil
		},
	}
}

// parseAsOf resolves the --as-of flag; empty means the current wall-clock
// time, captured once so the whole run shares a single reference instant.
func parseAsOf(v string) (time.Time, error) {
	if v == "" {
		return time.Now(), nil
	}
	for _, layout := range asOfLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --as-of value %q (want RFC3339)", v)
}

// selectSchemas resolves the --schema flag against the registry.
func selectSchemas(key string) ([]core.Schema, error) {
	if key == "" || key == "all" {
		return core.All(), nil
	}
	s, ok := core.Get(key)
	if !ok {
		var keys []string
		for _, reg := range core.All() {
			keys = append(keys, reg.Key)
		}
		return nil, fmt.Errorf("unknown schema %q (registered: %s)", key, strings.Join(keys, ", "))
	}
	return []core.Schema{s}, nil
}

// requiredColumns returns the union of required columns across schemas, so
// one dataset load can serve every selected variant.
func requiredColumns(schemas []core.Schema) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, s := range schemas {
		for _, c := range s.RequiredColumns() {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	return cols
}
