package structlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func newJSONTestLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewBuilder().
		WithLevel(TraceLevel).
		WithFormatter(NewJSONFormatter(JSONConfig{})).
		WithOutput(&buf).
		Build()
	return l, &buf
}

func decodeFields(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var parsed struct {
		Fields map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v (output: %q)", err, buf.String())
	}
	return parsed.Fields
}

func TestEntryBuilder_WithField(t *testing.T) {
	logger, buf := newJSONTestLogger()

	err := logger.WithField("user", "alice").
		WithField("attempt", 2).
		Info("login")
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	fields := decodeFields(t, buf)
	if fields["user"] != "alice" || fields["attempt"] != float64(2) {
		t.Errorf("fields = %#v", fields)
	}
}

func TestEntryBuilder_OverwriteOnDuplicateKey(t *testing.T) {
	logger, buf := newJSONTestLogger()

	err := logger.WithField("k", "first").WithField("k", "second").Info("dup")
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	fields := decodeFields(t, buf)
	if fields["k"] != "second" {
		t.Errorf("fields.k = %v, want last write", fields["k"])
	}
	if len(fields) != 1 {
		t.Errorf("fields has %d keys, want 1", len(fields))
	}
}

func TestEntryBuilder_WithFieldsMerge(t *testing.T) {
	logger, buf := newJSONTestLogger()

	err := logger.WithFields(Fields{"a": "1", "b": "2"}).
		WithFields(Fields{"b": "3", "c": "4"}).
		Info("merge")
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	fields := decodeFields(t, buf)
	want := map[string]any{"a": "1", "b": "3", "c": "4"}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("fields[%q] = %v, want %v", k, fields[k], v)
		}
	}
}

func TestEntryBuilder_WithError(t *testing.T) {
	logger, buf := newJSONTestLogger()

	err := logger.WithError(errors.New("file not found")).Error("open failed")
	if err != nil {
		t.Fatalf("Error() error = %v", err)
	}

	fields := decodeFields(t, buf)
	if fields[ErrorKey] != "file not found" {
		t.Errorf("fields.error = %v, want error text", fields[ErrorKey])
	}
}

func TestEntryBuilder_WithNilError(t *testing.T) {
	logger, buf := newJSONTestLogger()

	if err := logger.WithFields(nil).WithError(nil).Info("fine"); err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if _, ok := decodeFields(t, buf)[ErrorKey]; ok {
		t.Error("nil error must not store a field")
	}
}

func TestEntryBuilder_WithTime(t *testing.T) {
	logger, buf := newJSONTestLogger()

	event := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := logger.WithFields(nil).WithTime(event).Info("happened earlier"); err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	var parsed struct {
		Timestamp string         `json:"timestamp"`
		Fields    map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	// The explicit time is a field; the entry timestamp stays the
	// dispatch instant.
	if parsed.Fields[TimeKey] != "2026-01-02T03:04:05Z" {
		t.Errorf("fields.time = %v, want RFC3339 event time", parsed.Fields[TimeKey])
	}
	if parsed.Timestamp == parsed.Fields[TimeKey] {
		t.Error("Entry timestamp must not be replaced by the time field")
	}
}

func TestEntryBuilder_TerminalPropagatesDispatchError(t *testing.T) {
	logger := NewBuilder().
		WithFormatter(errFormatter{}).
		WithOutput(&bytes.Buffer{}).
		Build()

	if err := logger.WithField("k", "v").Warn("oops"); err == nil {
		t.Fatal("Expected dispatch error from terminal method")
	}
}

func TestEntryBuilder_TerminalLevels(t *testing.T) {
	logger, buf := newTestLogger(TraceLevel)

	logger.WithField("k", "v").Trace("t")
	logger.WithField("k", "v").Debug("d")
	logger.WithField("k", "v").Info("i")
	logger.WithField("k", "v").Warn("w")
	logger.WithField("k", "v").Error("e")

	for _, token := range []string{"[TRACE]", "[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(buf.String(), token) {
			t.Errorf("Output missing %s: %s", token, buf.String())
		}
	}
}
