package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// ----------------------------------------------------------------------------
// ParseAmount Tests
// ----------------------------------------------------------------------------

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		// Valid: Basic numbers
		{
			name:  "positive integer",
			input: "123",
			want:  123,
		},
		{
			name:  "zero",
			input: "0",
			want:  0,
		},
		{
			name:  "negative integer",
			input: "-456",
			want:  -456,
		},
		{
			name:  "decimal number",
			input: "123.45",
			want:  123.45,
		},
		{
			name:  "leading decimal point",
			input: ".99",
			want:  0.99,
		},

		// Valid: Currency and separators
		{
			name:  "dollar sign",
			input: "$1,234.56",
			want:  1234.56,
		},
		{
			name:  "euro sign",
			input: "€1234.56",
			want:  1234.56,
		},
		{
			name:  "pound sign",
			input: "£1234.56",
			want:  1234.56,
		},
		{
			name:  "thousands separators",
			input: "1,234,567.89",
			want:  1234567.89,
		},
		{
			name:  "accounting negative",
			input: "(123.45)",
			want:  -123.45,
		},
		{
			name:  "accounting negative with currency",
			input: "($1,000.00)",
			want:  -1000,
		},
		{
			name:  "scientific notation",
			input: "1.5e2",
			want:  150,
		},

		// Invalid
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "letters",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "mixed",
			input:   "12abc",
			wantErr: true,
		},
		{
			name:    "double decimal",
			input:   "1.2.3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// InRange Tests
// ----------------------------------------------------------------------------

func TestInRange(t *testing.T) {
	rule := InRange(2.50, 1450.99)

	tests := []struct {
		name     string
		input    string
		wantKind FailureKind
		wantPass bool
	}{
		{
			name:     "middle of range",
			input:    "500.00",
			wantPass: true,
		},
		{
			name:     "lower bound inclusive",
			input:    "2.50",
			wantPass: true,
		},
		{
			name:     "upper bound inclusive",
			input:    "1450.99",
			wantPass: true,
		},
		{
			name:     "currency formatted in range",
			input:    "$1,000.00",
			wantPass: true,
		},
		{
			name:     "below range",
			input:    "1.00",
			wantKind: KindOutOfRange,
		},
		{
			name:     "just below lower bound",
			input:    "2.49",
			wantKind: KindOutOfRange,
		},
		{
			name:     "just above upper bound",
			input:    "1451.00",
			wantKind: KindOutOfRange,
		},
		{
			name:     "negative",
			input:    "-5.00",
			wantKind: KindOutOfRange,
		},
		{
			name:     "non-numeric",
			input:    "abc",
			wantKind: KindFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule(tt.input)
			if tt.wantPass {
				if err != nil {
					t.Fatalf("rule(%q) = %v, want pass", tt.input, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("rule(%q) expected failure", tt.input)
			}
			var re *RuleError
			if !errors.As(err, &re) {
				t.Fatalf("rule(%q) returned %T, want *RuleError", tt.input, err)
			}
			if re.Kind != tt.wantKind {
				t.Errorf("rule(%q) kind = %v, want %v", tt.input, re.Kind, tt.wantKind)
			}
		})
	}
}

func TestInRange_MessageNamesValue(t *testing.T) {
	err := InRange(2.50, 1450.99)("1.00")
	if err == nil {
		t.Fatal("expected failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "1") || !strings.Contains(msg, "outside range") {
		t.Errorf("message %q should name the value and the range failure", msg)
	}
}

// ----------------------------------------------------------------------------
// TimeLayout / TimeFormat Tests
// ----------------------------------------------------------------------------

func TestTimeLayout(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
		wantErr bool
	}{
		{
			name:    "c-style pattern",
			pattern: "%Y-%m-%dT%H:%M:%S",
			want:    "2006-01-02T15:04:05",
		},
		{
			name:    "c-style date only",
			pattern: "%Y-%m-%d",
			want:    "2006-01-02",
		},
		{
			name:    "go layout passthrough",
			pattern: "2006-01-02 15:04:05",
			want:    "2006-01-02 15:04:05",
		},
		{
			name:    "empty pattern",
			pattern: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeLayout(tt.pattern)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("TimeLayout(%q) expected error", tt.pattern)
				}
				return
			}
			if err != nil {
				t.Fatalf("TimeLayout(%q) error = %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("TimeLayout(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTimeFormat(t *testing.T) {
	rule, err := TimeFormat("%Y-%m-%dT%H:%M:%S")
	if err != nil {
		t.Fatalf("TimeFormat() error = %v", err)
	}

	if err := rule("2024-01-15T10:30:00"); err != nil {
		t.Errorf("valid timestamp failed: %v", err)
	}

	err = rule("01/15/2024")
	if err == nil {
		t.Fatal("expected failure for wrong format")
	}
	var re *RuleError
	if !errors.As(err, &re) || re.Kind != KindFormat {
		t.Errorf("wrong format should be a format failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid date") {
		t.Errorf("message %q should say invalid date", err.Error())
	}
}

func TestTimeFormat_BadPattern(t *testing.T) {
	if _, err := TimeFormat(""); err == nil {
		t.Fatal("expected error for empty pattern")
	}
}

// ----------------------------------------------------------------------------
// NotAfter Tests
// ----------------------------------------------------------------------------

func TestNotAfter(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rule, err := NotAfter("%Y-%m-%dT%H:%M:%S", func() time.Time { return asOf })
	if err != nil {
		t.Fatalf("NotAfter() error = %v", err)
	}

	tests := []struct {
		name     string
		input    string
		wantKind FailureKind
		wantPass bool
	}{
		{
			name:     "before reference time",
			input:    "2024-01-15T10:30:00",
			wantPass: true,
		},
		{
			name:     "exactly reference time",
			input:    "2024-06-01T00:00:00",
			wantPass: true,
		},
		{
			name:     "one second after",
			input:    "2024-06-01T00:00:01",
			wantKind: KindFutureDate,
		},
		{
			name:     "far future",
			input:    "2030-01-01T00:00:00",
			wantKind: KindFutureDate,
		},
		{
			name:     "unparseable is a format failure, not future-date",
			input:    "not-a-date",
			wantKind: KindFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule(tt.input)
			if tt.wantPass {
				if err != nil {
					t.Fatalf("rule(%q) = %v, want pass", tt.input, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("rule(%q) expected failure", tt.input)
			}
			var re *RuleError
			if !errors.As(err, &re) {
				t.Fatalf("rule(%q) returned %T, want *RuleError", tt.input, err)
			}
			if re.Kind != tt.wantKind {
				t.Errorf("rule(%q) kind = %v, want %v", tt.input, re.Kind, tt.wantKind)
			}
		})
	}
}

// The future-date check must be a pure function of (value, now): the same
// value judged against two reference times can legitimately flip outcome.
func TestNotAfter_InjectedClock(t *testing.T) {
	const value = "2024-06-15T12:00:00"

	early, err := NotAfter("%Y-%m-%dT%H:%M:%S", func() time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	})
	if err != nil {
		t.Fatal(err)
	}
	late, err := NotAfter("%Y-%m-%dT%H:%M:%S", func() time.Time {
		return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := early(value); err == nil {
		t.Error("value after the early reference time should fail")
	}
	if err := late(value); err != nil {
		t.Errorf("value before the late reference time should pass, got %v", err)
	}
}
