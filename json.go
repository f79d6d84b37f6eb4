package structlog

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONConfig holds configuration for the JSON formatter.
type JSONConfig struct {
	// Pretty enables multi-line indented output
	Pretty bool
	// TimestampFormat specifies the time layout (empty for RFC3339Nano)
	TimestampFormat string
}

// JSONFormatter formats log entries as one JSON object per entry,
// followed by a newline. The level is serialized as its lowercase name.
type JSONFormatter struct {
	JSONConfig
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg JSONConfig) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{JSONConfig: cfg}
}

// jsonEntry is the wire shape of a formatted entry.
type jsonEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields"`
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	fields := entry.Fields
	if fields == nil {
		fields = Fields{}
	}

	je := jsonEntry{
		Timestamp: entry.Time.UTC().Format(f.TimestampFormat),
		Level:     entry.Level.lowerName(),
		Message:   entry.Message,
		Fields:    fields,
	}

	var (
		data []byte
		err  error
	)
	if f.Pretty {
		data, err = json.MarshalIndent(je, "", "  ")
	} else {
		data, err = json.Marshal(je)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal log entry: %w", err)
	}

	return append(data, '\n'), nil
}
