//go:build windows

// Package stderr provides a no-op implementation for Windows, where the
// console is not shared with fd 2 the same way.
package stderr

import (
	"os"

	"go.uber.org/zap"
)

// Messages never receives anything on Windows.
var Messages = make(chan string)

// Start is a no-op on Windows.
func Start(*zap.Logger) error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
