package structlog

import (
	"sync"
	"time"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Default returns the process-wide default logger, building it on first
// use with the standard configuration (InfoLevel, colored text, stdout).
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewBuilder().Build()
	}
	return defaultLogger
}

// SetDefault replaces the default logger
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// SetLevel changes the minimum level of the shared default logger in
// place, so the change is visible to every caller of the package-level
// functions.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// Package-level convenience functions using the default logger. They
// route through the same dispatch pipeline as direct Logger use.

// WithField starts an entry builder on the default logger
func WithField(key string, value any) *EntryBuilder {
	return Default().WithField(key, value)
}

// WithFields starts an entry builder on the default logger
func WithFields(fields Fields) *EntryBuilder {
	return Default().WithFields(fields)
}

// WithError starts an entry builder on the default logger with the
// error's text under ErrorKey
func WithError(err error) *EntryBuilder {
	return Default().WithError(err)
}

// WithTime starts an entry builder on the default logger with an
// explicit event time under TimeKey
func WithTime(t time.Time) *EntryBuilder {
	return Default().WithFields(nil).WithTime(t)
}

// Trace logs a trace message using the default logger
func Trace(msg string) error { return Default().Trace(msg) }

// Debug logs a debug message using the default logger
func Debug(msg string) error { return Default().Debug(msg) }

// Info logs an info message using the default logger
func Info(msg string) error { return Default().Info(msg) }

// Warn logs a warning message using the default logger
func Warn(msg string) error { return Default().Warn(msg) }

// Error logs an error message using the default logger
func Error(msg string) error { return Default().Error(msg) }

// Fatal logs a fatal message using the default logger and terminates
// the process
func Fatal(msg string) error { return Default().Fatal(msg) }

// Panic logs a panic message using the default logger and panics
func Panic(msg string) error { return Default().Panic(msg) }
