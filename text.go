package structlog

import (
	"bytes"
	"fmt"
)

// DefaultTimestampFormat is the text formatter's timestamp layout: UTC
// with millisecond precision and a literal trailing Z.
const DefaultTimestampFormat = "2006-01-02T15:04:05.000Z"

// timeOnlyFormat is used when TimeOnly is set.
const timeOnlyFormat = "15:04:05"

// ANSI escape sequences for the per-level color map.
const (
	ansiReset   = "\x1b[0m"
	ansiWhite   = "\x1b[37m"
	ansiBlue    = "\x1b[34m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiRed     = "\x1b[31m"
	ansiBoldRed = "\x1b[1;31m"
)

// levelColors maps each level to its terminal color.
var levelColors = [...]string{
	TraceLevel: ansiWhite,
	DebugLevel: ansiBlue,
	InfoLevel:  ansiGreen,
	WarnLevel:  ansiYellow,
	ErrorLevel: ansiRed,
	FatalLevel: ansiBoldRed,
	PanicLevel: ansiBoldRed,
}

// TextConfig holds configuration for the text formatter.
type TextConfig struct {
	// TimestampFormat specifies the time layout (empty for
	// DefaultTimestampFormat)
	TimestampFormat string
	// TimeOnly renders the clock time without the date
	TimeOnly bool
	// DisableColors turns off the ANSI level coloring. Output is
	// byte-identical apart from the absent escape sequences.
	DisableColors bool
}

// TextFormatter formats log entries as human-readable text:
//
//	[<timestamp>] [<LEVEL>] <message> <key>=<value> ...
//
// Field order follows map iteration and is not guaranteed.
type TextFormatter struct {
	TextConfig
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg TextConfig) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{TextConfig: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	layout := f.TimestampFormat
	if f.TimeOnly {
		layout = timeOnlyFormat
	}

	buf.WriteByte('[')
	buf.Write(entry.Time.UTC().AppendFormat(buf.AvailableBuffer(), layout))
	buf.WriteString("] [")
	if !f.DisableColors && int(entry.Level) < len(levelColors) {
		buf.WriteString(levelColors[entry.Level])
		buf.WriteString(entry.Level.String())
		buf.WriteString(ansiReset)
	} else {
		buf.WriteString(entry.Level.String())
	}
	buf.WriteString("] ")
	buf.WriteString(entry.Message)

	for key, value := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(key)
		buf.WriteByte('=')
		appendTextValue(buf, value)
	}

	buf.WriteByte('\n')

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// appendTextValue writes a field value in its bare text form. Strings
// render without quotes so `user=alice` stays grep-friendly.
func appendTextValue(buf *bytes.Buffer, value any) {
	switch v := value.(type) {
	case string:
		buf.WriteString(v)
	case error:
		buf.WriteString(v.Error())
	case nil:
		buf.WriteString("<nil>")
	default:
		fmt.Fprintf(buf, "%v", v)
	}
}
