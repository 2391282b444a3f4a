// Package core provides the business logic for CSV data audits.
//
// This package is the heart of the auditor, containing all domain logic
// independent of any CLI or transport layer.
//
// # Schema Registry
//
// Schema variants are registered via [Register]. Each [Schema] names its
// field specs and the column used as the row identifier in diagnostics:
//
//	core.Register(core.Schema{
//	    Key:      "amount-range",
//	    Label:    "Sale amount range",
//	    IDColumn: "sale_id",
//	    Fields: []core.FieldSpec{
//	        {Name: "sale_amount", Required: true, Rule: core.InRange(2.50, 1450.99)},
//	    },
//	})
//
// # Rules
//
// Rules are pure closures built by the factories in rules.go: [InRange],
// [TimeFormat], and [NotAfter]. Temporal rules take an injected clock so the
// future-date check is a pure function of (value, now) and stays reproducible
// in tests.
//
// # Audit Runs
//
// [Auditor.Run] walks every data row of a [Dataset], logs one warning per
// validation error, and returns a [Report] with a kind-agnostic failure count.
// Failures are independent: a failing row never stops the run.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - VAL001-VAL006: Validation errors (formats, ranges, missing columns)
//   - FILE001-FILE003: File errors (empty, malformed, no header)
//   - RUN001: Interrupted runs
package core
