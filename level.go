package structlog

import "strings"

// Level represents the severity level of a log entry. Levels are totally
// ordered: Trace < Debug < Info < Warn < Error < Fatal < Panic.
type Level int8

const (
	// TraceLevel for very fine-grained debugging information
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages (dispatch terminates the process)
	FatalLevel
	// PanicLevel for panic messages (dispatch panics after writing)
	PanicLevel
)

// AllLevels lists every level in ascending order. Hooks that want to fire
// for everything can return it from Levels.
var AllLevels = []Level{
	TraceLevel,
	DebugLevel,
	InfoLevel,
	WarnLevel,
	ErrorLevel,
	FatalLevel,
	PanicLevel,
}

// String returns the fixed uppercase display name of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case PanicLevel:
		return "PANIC"
	default:
		return "UNKNOWN"
	}
}

// lowerName is the lowercase form used by the JSON formatter.
func (l Level) lowerName() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case PanicLevel:
		return "panic"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level. Matching is case-insensitive
// and accepts "warning" as a synonym for WarnLevel. No whitespace is
// trimmed. The second return value reports whether the input was
// recognized.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "fatal":
		return FatalLevel, true
	case "panic":
		return PanicLevel, true
	default:
		return InfoLevel, false
	}
}
