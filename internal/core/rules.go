package core

// rules.go provides the rule factories used to build audit schemas.
//
// Each factory returns a closure over its configuration, so a built Rule is a
// pure function of its input value (and, for temporal rules, the injected
// clock). Nothing here reads wall-clock time directly: NotAfter takes a now
// function so the future-date check stays reproducible in tests and across
// reruns of the same dataset.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseAmount converts a CSV cell to a float64, handling the messy reality of
// exported monetary data: currency symbols, thousands separators, and the
// accounting negative format "(123.45)".
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove common currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "£", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return 0, fmt.Errorf("invalid number format: %q", s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number format: %q", s)
	}
	return f, nil
}

// TimeLayout resolves a date/time pattern to a Go layout string.
// C-style patterns ("%Y-%m-%dT%H:%M:%S") are converted via strftime;
// anything without a '%' is assumed to already be a Go reference layout.
func TimeLayout(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("empty time pattern")
	}
	if !strings.Contains(pattern, "%") {
		return pattern, nil
	}
	layout, err := strftime.Layout(pattern)
	if err != nil {
		return "", fmt.Errorf("unsupported time pattern %q: %w", pattern, err)
	}
	return layout, nil
}

// InRange returns a rule requiring the value to be a number within
// [min, max]. Bounds are inclusive.
func InRange(min, max float64) Rule {
	return func(value string) error {
		f, err := ParseAmount(value)
		if err != nil {
			return &RuleError{
				Kind:    KindFormat,
				Message: fmt.Sprintf("invalid number %q", value),
			}
		}
		if f < min || f > max {
			return &RuleError{
				Kind:    KindOutOfRange,
				Message: fmt.Sprintf("%v outside range [%v, %v]", f, min, max),
			}
		}
		return nil
	}
}

// TimeFormat returns a rule requiring the value to parse under the given
// pattern (C-style or Go layout).
func TimeFormat(pattern string) (Rule, error) {
	layout, err := TimeLayout(pattern)
	if err != nil {
		return nil, err
	}
	return func(value string) error {
		if _, err := time.Parse(layout, value); err != nil {
			return &RuleError{
				Kind:    KindFormat,
				Message: fmt.Sprintf("invalid date %q for format %s", value, pattern),
			}
		}
		return nil
	}, nil
}

// NotAfter returns a rule requiring the value to parse under the pattern and
// to not be later than now(). An unparseable value is a format failure,
// distinct from the semantic future-date failure. Equal to now() passes;
// strictly after fails.
func NotAfter(pattern string, now func() time.Time) (Rule, error) {
	layout, err := TimeLayout(pattern)
	if err != nil {
		return nil, err
	}
	return func(value string) error {
		t, err := time.Parse(layout, value)
		if err != nil {
			return &RuleError{
				Kind:    KindFormat,
				Message: fmt.Sprintf("invalid date %q for format %s", value, pattern),
			}
		}
		if ref := now(); t.After(ref) {
			return &RuleError{
				Kind:    KindFutureDate,
				Message: fmt.Sprintf("date %q is in the future (after %s)", value, ref.Format(layout)),
			}
		}
		return nil
	}, nil
}
