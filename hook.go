package structlog

import (
	"context"
	"errors"
)

// ErrAsyncOnly is returned by the synchronous Fire of hooks that only
// support asynchronous firing. Callers can detect the capability gap
// with errors.Is and switch to FireAsync.
var ErrAsyncOnly = errors.New("hook supports asynchronous firing only")

// Hook is notified of every dispatched entry whose level is in the set
// returned by Levels. Hooks are side effects: a failure is reported to
// the logger's diagnostics stream but never fails the logging call and
// never stops the remaining hooks.
//
// The entry passed to Fire is valid only for the duration of the call;
// implementations must not retain it or its Logger back-reference.
// Hook instances shared across loggers must be safe for concurrent use.
type Hook interface {
	// Levels returns the log levels this hook should be fired for.
	Levels() []Level

	// Fire is called with the dispatched entry.
	Fire(entry *Entry) error
}

// AsyncHook is an optional interface for hooks whose side effect is
// itself asynchronous, such as a network publish. When a hook implements
// it, dispatch prefers FireAsync over Fire.
//
// FireAsync must return a buffered channel that receives exactly one
// result, so the sender never blocks even if the receiver gives up
// early. A hook that only has a synchronous implementation
// does not need this interface at all — dispatch falls back to Fire.
type AsyncHook interface {
	Hook

	// FireAsync starts the hook's side effect and returns a one-shot
	// channel carrying its result.
	FireAsync(ctx context.Context, entry *Entry) <-chan error
}

// levelIn reports whether level is in the set.
func levelIn(set []Level, level Level) bool {
	for _, l := range set {
		if l == level {
			return true
		}
	}
	return false
}
