// Package sink provides output sinks for Logger construction.
package sink

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig holds configuration for a rotating file sink.
type FileConfig struct {
	// Path of the log file
	Path string
	// MaxSizeMB before the file is rotated (default: 100)
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept (default: 3)
	MaxBackups int
	// MaxAgeDays before rotated files are deleted (default: 28)
	MaxAgeDays int
	// Compress gzips rotated files
	Compress bool
}

// NewFile returns a size-rotating file sink suitable as a Logger output.
// The file is created lazily on first write.
func NewFile(cfg FileConfig) io.WriteCloser {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 100
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 28
	}
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}
