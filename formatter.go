package structlog

import (
	"bytes"
	"sync"
)

// Formatter renders an Entry into the bytes written to the logger's
// output sink. Implementations must be safe for concurrent use; a Logger
// holds exactly one Formatter for its lifetime.
//
// Format must return an error rather than panic when an entry cannot be
// rendered (for example a field value the encoding cannot represent).
// The dispatch pipeline surfaces that error to the original log call and
// writes nothing.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
