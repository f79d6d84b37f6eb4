package structlog

import "time"

// Entry is the immutable snapshot of one log event. It is constructed
// exactly once per dispatch, after the level filter has passed, and is
// never mutated afterwards.
type Entry struct {
	// Time is the capture instant of the dispatch, in UTC.
	Time time.Time

	// Level the entry was dispatched at.
	Level Level

	// Message is the caller-supplied message text.
	Message string

	// Fields is a snapshot of the accumulated fields.
	Fields Fields

	// Logger is a non-owning back-reference to the logger that produced
	// the entry, so formatters and hooks can reach logger-wide context.
	// It is valid only for the duration of the dispatch call and must
	// not be retained beyond it.
	Logger *Logger
}
