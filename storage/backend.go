package storage

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a backend cannot run on this platform.
var ErrUnsupported = errors.New("storage: backend not supported on this platform")

// Kind selects a storage backend.
type Kind int

const (
	// Buffered collects records in an in-process buffer and appends it
	// to the segment file when the buffer fills or the segment rolls.
	Buffered Kind = iota
	// Mapped writes records straight into a memory mapping of the
	// segment file.
	Mapped
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Buffered:
		return "buffered"
	case Mapped:
		return "mapped"
	default:
		return "unknown"
	}
}

// Backend opens segment files.
type Backend interface {
	// Open opens or creates the segment file at path, positioned after
	// any bytes it already holds.
	Open(path string) (Segment, error)

	// Capacity is the size of the largest arena a segment can hand out.
	// Records longer than this bypass the arena.
	Capacity() int64
}

// Segment is one open segment file. Segments are not safe for concurrent
// use; the writer only touches them while holding its rotation lock.
type Segment interface {
	// Size is the number of bytes logically written to the segment.
	Size() int64

	// Arena returns the memory new records are copied into and the
	// position in it where the next record goes. Bytes before start are
	// already part of Size.
	Arena() (buf []byte, start int)

	// Commit marks n bytes following the arena start as written. For the
	// buffered backend this is when they reach the file.
	Commit(n int) error

	// Write appends p to the segment without going through the arena.
	// Any previously handed out arena is stale afterwards.
	Write(p []byte) error

	// Close flushes the segment, truncates the file to Size and
	// releases it.
	Close() error
}

// New returns the backend of the given kind. maxSize is the segment size
// budget in bytes; bufferSize only applies to Buffered.
func New(kind Kind, maxSize int64, bufferSize int) (Backend, error) {
	switch kind {
	case Buffered:
		return NewBufferedBackend(maxSize, bufferSize)
	case Mapped:
		return NewMappedBackend(maxSize)
	default:
		return nil, fmt.Errorf("storage: unknown backend kind %d", kind)
	}
}
