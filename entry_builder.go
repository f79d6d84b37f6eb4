package structlog

import (
	"context"
	"time"
)

// Fixed field keys used by the convenience accumulators.
const (
	// ErrorKey holds the textual description stored by WithError.
	ErrorKey = "error"
	// TimeKey holds the RFC3339 string stored by WithTime. This is an
	// ordinary field; the entry's own timestamp is always the dispatch
	// instant.
	TimeKey = "time"
)

// EntryBuilder accumulates fields against a borrowed Logger. Each
// terminal method dispatches once with the fields gathered so far and
// returns the dispatch result. Builders are cheap and single-use; they
// are not safe for concurrent mutation.
type EntryBuilder struct {
	logger *Logger
	fields Fields
	ctx    context.Context
}

// WithField sets a single field, overwriting any previous value for the
// same key.
func (b *EntryBuilder) WithField(key string, value any) *EntryBuilder {
	b.fields[key] = value
	return b
}

// WithFields merges all given fields into the builder. Existing keys
// are overwritten.
func (b *EntryBuilder) WithFields(fields Fields) *EntryBuilder {
	for k, v := range fields {
		b.fields[k] = v
	}
	return b
}

// WithError stores the error's text under ErrorKey. A nil error stores
// nothing.
func (b *EntryBuilder) WithError(err error) *EntryBuilder {
	if err != nil {
		b.fields[ErrorKey] = err.Error()
	}
	return b
}

// WithTime stores an explicit event time under TimeKey as an RFC3339
// string, for callers recording when something happened as opposed to
// when it was logged.
func (b *EntryBuilder) WithTime(t time.Time) *EntryBuilder {
	b.fields[TimeKey] = t.Format(time.RFC3339)
	return b
}

// WithContext sets the context handed to asynchronous hooks when the
// entry is dispatched.
func (b *EntryBuilder) WithContext(ctx context.Context) *EntryBuilder {
	b.ctx = ctx
	return b
}

// Log dispatches the accumulated entry at the given level.
func (b *EntryBuilder) Log(level Level, msg string) error {
	ctx := b.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return b.logger.LogContext(ctx, level, msg, b.fields)
}

// Trace dispatches at TraceLevel
func (b *EntryBuilder) Trace(msg string) error { return b.Log(TraceLevel, msg) }

// Debug dispatches at DebugLevel
func (b *EntryBuilder) Debug(msg string) error { return b.Log(DebugLevel, msg) }

// Info dispatches at InfoLevel
func (b *EntryBuilder) Info(msg string) error { return b.Log(InfoLevel, msg) }

// Warn dispatches at WarnLevel
func (b *EntryBuilder) Warn(msg string) error { return b.Log(WarnLevel, msg) }

// Error dispatches at ErrorLevel
func (b *EntryBuilder) Error(msg string) error { return b.Log(ErrorLevel, msg) }

// Fatal dispatches at FatalLevel; the logger's exit function runs after
// the entry is written and hooks have fired
func (b *EntryBuilder) Fatal(msg string) error { return b.Log(FatalLevel, msg) }

// Panic dispatches at PanicLevel and panics with the message
func (b *EntryBuilder) Panic(msg string) error { return b.Log(PanicLevel, msg) }
