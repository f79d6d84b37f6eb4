// Package zaphook mirrors log entries into an existing zap.Logger, so
// applications migrating between stacks can tee their records into a
// zap pipeline without double-writing at every call site.
package zaphook

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mzeray/structlog"
)

// Hook forwards matching entries to a zap logger.
type Hook struct {
	logger *zap.Logger
	levels []structlog.Level
}

// New creates a hook around an existing zap logger. With no explicit
// levels the hook fires for everything.
func New(logger *zap.Logger, levels ...structlog.Level) *Hook {
	if len(levels) == 0 {
		levels = structlog.AllLevels
	}
	return &Hook{logger: logger, levels: levels}
}

// Levels returns the configured level set.
func (h *Hook) Levels() []structlog.Level {
	return h.levels
}

// Fire writes the entry to the zap logger at the mapped level.
func (h *Hook) Fire(entry *structlog.Entry) error {
	ce := h.logger.Check(toZapLevel(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	ce.Time = entry.Time
	ce.Write(toZapFields(entry)...)
	return nil
}

// toZapLevel maps a structlog level onto zapcore. Fatal and Panic map
// to zap's Error: the dispatching logger owns the post-action, and the
// mirror must not exit or panic a second time.
func toZapLevel(level structlog.Level) zapcore.Level {
	switch level {
	case structlog.TraceLevel, structlog.DebugLevel:
		return zapcore.DebugLevel
	case structlog.InfoLevel:
		return zapcore.InfoLevel
	case structlog.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func toZapFields(entry *structlog.Entry) []zap.Field {
	fields := make([]zap.Field, 0, len(entry.Fields)+1)
	if entry.Level >= structlog.FatalLevel {
		fields = append(fields, zap.String("severity", entry.Level.String()))
	}
	for key, value := range entry.Fields {
		fields = append(fields, zap.Any(key, value))
	}
	return fields
}
