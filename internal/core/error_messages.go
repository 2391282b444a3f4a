// Package core provides the business logic for CSV data audits.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. When operators encounter errors, they can quote the error code
// for faster diagnosis.
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Invalid date: Invalid date format detected
//	         Action: Check the configured timestamp pattern against the data
//	         Patterns: "invalid date"
//
//	VAL002 - Invalid number: Invalid number format detected
//	         Action: Remove currency symbols and use standard decimal format
//	         Patterns: "invalid number"
//
//	VAL003 - Required field: Required field is empty
//	         Action: Ensure all required columns have values
//	         Patterns: "required field"
//
//	VAL004 - Missing column: Required column is missing from CSV
//	         Action: Check that all required columns are present in your file
//	         Patterns: "missing required column"
//
//	VAL005 - Out of range: Value is outside the allowed bounds
//	         Action: Review the configured range for this field
//	         Patterns: "outside range"
//
//	VAL006 - Future date: Date is later than the audit reference time
//	         Action: Check the record's timestamp or the --as-of value
//	         Patterns: "in the future"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Empty file: The CSV file contains no data
//	          Action: Point the audit at a CSV file with data rows
//	          Patterns: "empty file"
//
//	FILE002 - Invalid CSV: File is not a valid CSV
//	          Action: Ensure file is comma-separated with consistent columns
//	          Patterns: "invalid csv"
//
//	FILE003 - No header: No row contains the required columns
//	          Action: Verify column headers match the schema exactly
//	          Patterns: "no header row"
//
// # Run Errors (RUN001)
//
//	RUN001 - Cancelled: The audit was interrupted
//	         Action: Run the audit again
//	         Patterns: "cancelled", "context canceled"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Check the logs for the original technical error
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns should be
// defined before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. Patterns are matched using strings.Contains; the first matching
// pattern wins, so specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "invalid date",
		msg: UserMessage{
			Message: "Invalid date format detected",
			Action:  "Check the configured timestamp pattern against the data",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid number",
		msg: UserMessage{
			Message: "Invalid number format detected",
			Action:  "Remove currency symbols and use standard decimal format",
			Code:    "VAL002",
		},
	},
	{
		pattern: "required field",
		msg: UserMessage{
			Message: "Required field is empty",
			Action:  "Ensure all required columns have values",
			Code:    "VAL003",
		},
	},
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "Required column is missing from CSV",
			Action:  "Check that all required columns are present in your file",
			Code:    "VAL004",
		},
	},
	{
		pattern: "outside range",
		msg: UserMessage{
			Message: "Value is outside the allowed bounds",
			Action:  "Review the configured range for this field",
			Code:    "VAL005",
		},
	},
	{
		pattern: "in the future",
		msg: UserMessage{
			Message: "Date is later than the audit reference time",
			Action:  "Check the record's timestamp or the --as-of value",
			Code:    "VAL006",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The CSV file contains no data",
			Action:  "Point the audit at a CSV file with data rows",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Ensure file is comma-separated with consistent columns",
			Code:    "FILE002",
		},
	},
	{
		pattern: "no header row",
		msg: UserMessage{
			Message: "No row contains the required columns",
			Action:  "Verify column headers match the schema exactly",
			Code:    "FILE003",
		},
	},
	{
		pattern: "cancelled",
		msg: UserMessage{
			Message: "The audit was interrupted",
			Action:  "Run the audit again",
			Code:    "RUN001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The audit was interrupted",
			Action:  "Run the audit again",
			Code:    "RUN001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logs for the original technical error",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing checks if an error matches a known pattern and should be shown
// to operators as-is. Returns true if the error matches a specific pattern
// (not the generic ERR000 fallback).
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
