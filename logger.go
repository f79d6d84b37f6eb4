package structlog

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// hookDiagnostics receives hook failure reports. It is a variable so
// tests can capture the diagnostics stream.
var hookDiagnostics io.Writer = os.Stderr

// flusher is the optional flush half of the output sink contract.
// bufio.Writer and similar buffered sinks implement it; unbuffered
// sinks such as os.File need no user-space flush.
type flusher interface {
	Flush() error
}

// Logger dispatches log entries: it filters by level, renders entries
// through its formatter, writes them to the output sink under a mutex,
// and fans them out to its hooks.
//
// A Logger is configured once via the Builder and is safe for shared
// concurrent use afterwards. The minimum level is the one exception to
// immutability: SetLevel changes it atomically, which is what keeps the
// package-level default logger adjustable in place.
type Logger struct {
	level     atomic.Int32
	formatter Formatter
	hooks     []Hook
	exit      func(int)

	mu  sync.Mutex
	out io.Writer
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level     Level
	formatter Formatter
	hooks     []Hook
	out       io.Writer
	exit      func(int)
}

// NewBuilder creates a new logger builder with the defaults: InfoLevel,
// colored text formatting, no hooks, standard output, os.Exit on Fatal.
func NewBuilder() *Builder {
	return &Builder{
		level:     InfoLevel,
		formatter: NewTextFormatter(TextConfig{}),
		out:       os.Stdout,
		exit:      os.Exit,
	}
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level Level) *Builder {
	b.level = level
	return b
}

// WithFormatter sets the formatter
func (b *Builder) WithFormatter(f Formatter) *Builder {
	if f != nil {
		b.formatter = f
	}
	return b
}

// WithHook appends a hook. Hooks fire in the order they were added.
func (b *Builder) WithHook(h Hook) *Builder {
	if h != nil {
		b.hooks = append(b.hooks, h)
	}
	return b
}

// WithOutput sets the output sink
func (b *Builder) WithOutput(w io.Writer) *Builder {
	if w != nil {
		b.out = w
	}
	return b
}

// WithExitFunc replaces the function invoked after a Fatal entry has
// been written and its hooks have fired. The default is os.Exit; tests
// inject a recorder so Fatal dispatches stay observable in-process.
func (b *Builder) WithExitFunc(exit func(int)) *Builder {
	if exit != nil {
		b.exit = exit
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		formatter: b.formatter,
		hooks:     append([]Hook(nil), b.hooks...),
		exit:      b.exit,
		out:       b.out,
	}
	l.level.Store(int32(b.level))
	return l
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel changes the minimum level of this logger instance. The
// change is atomic and visible to all goroutines sharing the logger.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Log dispatches an entry at the given level. It returns an error when
// formatting or writing fails; hook failures are reported to the
// diagnostics stream instead. Entries below the minimum level are
// filtered before any work happens and return nil.
//
// A FatalLevel dispatch terminates the process after the entry has been
// written and the hooks have run; a PanicLevel dispatch panics with the
// message at the same point.
func (l *Logger) Log(level Level, msg string, fields Fields) error {
	return l.LogContext(context.Background(), level, msg, fields)
}

// LogContext is Log with a caller-supplied context, which is handed to
// hooks that implement AsyncHook.
func (l *Logger) LogContext(ctx context.Context, level Level, msg string, fields Fields) error {
	// Level gate before any allocation.
	if level < l.Level() {
		return nil
	}

	entry := &Entry{
		Time:    time.Now().UTC(),
		Level:   level,
		Message: msg,
		Fields:  fields.clone(),
		Logger:  l,
	}

	// Format first: a formatting failure aborts the dispatch before
	// anything is written and before any hook fires.
	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return err
	}

	// The write+flush is the single serialization point across
	// concurrent dispatches. The lock is released before hooks run and
	// before any Fatal/Panic post-action.
	l.mu.Lock()
	_, err = l.out.Write(formatted)
	if err == nil {
		if f, ok := l.out.(flusher); ok {
			err = f.Flush()
		}
	}
	l.mu.Unlock()
	if err != nil {
		return fmt.Errorf("write log entry: %w", err)
	}

	l.fireHooks(ctx, entry)

	switch level {
	case FatalLevel:
		l.exit(1)
	case PanicLevel:
		panic(msg)
	}
	return nil
}

// fireHooks invokes every hook registered for the entry's level, in
// registration order. Asynchronous hooks are bridged here: dispatch
// waits for the one-shot result so hook attempts complete before any
// post-action. Failures go to the diagnostics stream only.
func (l *Logger) fireHooks(ctx context.Context, entry *Entry) {
	for _, h := range l.hooks {
		if !levelIn(h.Levels(), entry.Level) {
			continue
		}
		var err error
		if ah, ok := h.(AsyncHook); ok {
			select {
			case err = <-ah.FireAsync(ctx, entry):
			case <-ctx.Done():
				err = ctx.Err()
			}
		} else {
			err = h.Fire(entry)
		}
		if err != nil {
			fmt.Fprintf(hookDiagnostics, "structlog: hook %T failed: %v\n", h, err)
		}
	}
}

// WithField starts an entry builder with a single field.
func (l *Logger) WithField(key string, value any) *EntryBuilder {
	return l.WithFields(Fields{key: value})
}

// WithFields starts an entry builder seeded with the given fields.
func (l *Logger) WithFields(fields Fields) *EntryBuilder {
	b := &EntryBuilder{logger: l, fields: make(Fields, len(fields))}
	for k, v := range fields {
		b.fields[k] = v
	}
	return b
}

// WithError starts an entry builder carrying the error's text under the
// "error" key.
func (l *Logger) WithError(err error) *EntryBuilder {
	return l.WithFields(nil).WithError(err)
}

// Trace logs a message at TraceLevel
func (l *Logger) Trace(msg string) error { return l.Log(TraceLevel, msg, nil) }

// Debug logs a message at DebugLevel
func (l *Logger) Debug(msg string) error { return l.Log(DebugLevel, msg, nil) }

// Info logs a message at InfoLevel
func (l *Logger) Info(msg string) error { return l.Log(InfoLevel, msg, nil) }

// Warn logs a message at WarnLevel
func (l *Logger) Warn(msg string) error { return l.Log(WarnLevel, msg, nil) }

// Error logs a message at ErrorLevel
func (l *Logger) Error(msg string) error { return l.Log(ErrorLevel, msg, nil) }

// Fatal logs a message at FatalLevel and terminates the process
func (l *Logger) Fatal(msg string) error { return l.Log(FatalLevel, msg, nil) }

// Panic logs a message at PanicLevel and panics with the message
func (l *Logger) Panic(msg string) error { return l.Log(PanicLevel, msg, nil) }
