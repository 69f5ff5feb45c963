// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"go.uber.org/multierr"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Preferences
	OpPrefsLoad Op = "load preferences"
	OpPrefsSave Op = "save preferences"

	// Market data
	OpMarketFetch Op = "fetch market data"

	// Page layout
	OpRegionRegister Op = "register scroll region"

	// Static content
	OpContentLoad Op = "load content"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	errs := multierr.Errors(err)
	if len(errs) > 1 {
		return fmt.Sprintf("Failed to %s (%d errors): %v", op, len(errs), errs[0])
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
