// Package console provides the bounded boot log used by entos tooling: an
// io.Writer that mirrors everything to a sink while keeping a copy in a
// fixed-capacity buffer for later inspection.
package console

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// DefaultCapacity is the buffer size used when New gets a capacity <= 0.
const DefaultCapacity = 65535

// ErrLogFull means a write would not fit the remaining buffer capacity.
var ErrLogFull = errors.New("console log buffer is full")

// Log retains everything written to it up to a fixed capacity and mirrors
// each accepted write to the sink. A write that does not fit fails with
// ErrLogFull before anything is mirrored or retained, so a failed write
// changes nothing. Safe for concurrent use.
type Log struct {
	mu   sync.Mutex
	sink io.Writer
	buf  []byte
	cap  int
}

// New returns a log mirroring to sink. A nil sink disables mirroring, a
// capacity <= 0 selects DefaultCapacity.
func New(sink io.Writer, capacity int) *Log {
	if sink == nil {
		sink = io.Discard
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{sink: sink, buf: make([]byte, 0, capacity), cap: capacity}
}

// Write implements io.Writer. The write is all or nothing: it either fits
// the remaining capacity and reaches both the sink and the buffer, or it
// fails and neither sees it.
func (l *Log) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(p) > l.cap-len(l.buf) {
		return 0, fmt.Errorf("%w: %d bytes retained, %d more do not fit %d", ErrLogFull, len(l.buf), len(p), l.cap)
	}
	if _, err := l.sink.Write(p); err != nil {
		return 0, fmt.Errorf("mirror to sink: %w", err)
	}
	l.buf = append(l.buf, p...)
	return len(p), nil
}

// Len returns the number of bytes retained so far.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buf)
}

// Remaining returns how many more bytes the log can accept.
func (l *Log) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cap - len(l.buf)
}

// Contents returns a copy of everything retained so far.
func (l *Log) Contents() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]byte, len(l.buf))
	copy(out, l.buf)
	return out
}
