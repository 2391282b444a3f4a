package cli

import (
	"testing"
	"time"

	"salescheck/internal/core"
)

func TestParseAsOf(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			input: "2024-06-01T00:00:00Z",
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "no zone",
			input: "2024-06-01T12:30:00",
			want:  time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2024-06-01",
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAsOf(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAsOf(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAsOf(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseAsOf(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAsOf_EmptyDefaultsToNow(t *testing.T) {
	before := time.Now()
	got, err := parseAsOf("")
	if err != nil {
		t.Fatal(err)
	}
	if got.Before(before) || got.After(time.Now()) {
		t.Errorf("parseAsOf(\"\") = %v, want roughly now", got)
	}
}

func TestRequiredColumns_Union(t *testing.T) {
	schemas := []core.Schema{
		{Key: "a", Fields: []core.FieldSpec{{Name: "sale_amount", Required: true}}},
		{Key: "b", Fields: []core.FieldSpec{{Name: "timestamp", Required: true}}},
		{Key: "c", Fields: []core.FieldSpec{{Name: "sale_amount", Required: true}}},
	}

	cols := requiredColumns(schemas)
	if len(cols) != 2 || cols[0] != "sale_amount" || cols[1] != "timestamp" {
		t.Errorf("requiredColumns() = %v, want [sale_amount timestamp]", cols)
	}
}

func TestSelectSchemas(t *testing.T) {
	core.Reset()
	t.Cleanup(core.Reset)

	core.Register(core.Schema{Key: "amount-range"})
	core.Register(core.Schema{Key: "timestamp-format"})

	all, err := selectSchemas("all")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("selectSchemas(all) returned %d schemas, want 2", len(all))
	}

	one, err := selectSchemas("amount-range")
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 1 || one[0].Key != "amount-range" {
		t.Errorf("selectSchemas(amount-range) = %v", one)
	}

	if _, err := selectSchemas("bogus"); err == nil {
		t.Error("selectSchemas(bogus) expected error")
	}
}
