package logger

import (
	"sync/atomic"

	"github.com/philipp01105/seglog/core"
)

var defaultLogger atomic.Pointer[Logger]

// Default returns the default logger, or nil if none was set.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger used by the package-level functions.
// Passing nil turns them into no-ops.
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}

// Package-level convenience functions using the default logger. Each
// calls log itself so the recorded call site is the caller's.

// Debug logs a debug message using the default logger
func Debug(msg string) error {
	l := Default()
	if l == nil || !l.level.Enabled(core.DebugLevel) {
		return nil
	}
	return l.log(core.DebugLevel, msg)
}

// Info logs an info message using the default logger
func Info(msg string) error {
	l := Default()
	if l == nil || !l.level.Enabled(core.InfoLevel) {
		return nil
	}
	return l.log(core.InfoLevel, msg)
}

// Warning logs a warning message using the default logger
func Warning(msg string) error {
	l := Default()
	if l == nil || !l.level.Enabled(core.WarningLevel) {
		return nil
	}
	return l.log(core.WarningLevel, msg)
}

// Error logs an error message using the default logger
func Error(msg string) error {
	l := Default()
	if l == nil || !l.level.Enabled(core.ErrorLevel) {
		return nil
	}
	return l.log(core.ErrorLevel, msg)
}

// SetLevel changes the level of the default logger
func SetLevel(level core.Level) {
	if l := Default(); l != nil {
		l.SetLevel(level)
	}
}
