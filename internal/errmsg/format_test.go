//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPrefsLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPrefsSave,
			err:      errors.New("disk full"),
			expected: "Failed to save preferences: disk full",
		},
		{
			name:     "market operation",
			op:       OpMarketFetch,
			err:      errors.New("rate limited"),
			expected: "Failed to fetch market data: rate limited",
		},
		{
			name:     "combined errors are summarized",
			op:       OpMarketFetch,
			err:      multierr.Combine(errors.New("markets: timeout"), errors.New("global: timeout")),
			expected: "Failed to fetch market data (2 errors): markets: timeout",
		},
		{
			name:     "initialization",
			op:       OpInitialize,
			err:      errors.New("no terminal"),
			expected: "Failed to initialize application: no terminal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpRegionRegister,
			context:  "boot",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpRegionRegister,
			context:  "dashboard",
			err:      errors.New("invalid region"),
			expected: "Failed to register scroll region 'dashboard': invalid region",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpContentLoad,
			context:  "",
			err:      errors.New("bad yaml"),
			expected: "Failed to load content: bad yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
