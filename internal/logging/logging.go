// Package logging builds the application's zap logger.
//
// The terminal belongs to the UI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dirkx/dirkx/internal/config"
)

// Logger wraps a zap logger with the file it writes to.
type Logger struct {
	*zap.Logger
	file *os.File
}

// New opens the log file named by cfg and returns a logger writing to it.
// Level "none" yields a no-op logger that touches no files.
func New(cfg config.LogConfig) (*Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "none":
		return &Logger{Logger: zap.NewNop()}, nil
	case "debug":
		level = zapcore.DebugLevel
	default:
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(f), zap.NewAtomicLevelAt(level))

	return &Logger{Logger: zap.New(core, zap.AddCaller()), file: f}, nil
}

// Named returns a child logger for one component.
func (l *Logger) Named(component string) *zap.Logger {
	return l.Logger.Named(component)
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
