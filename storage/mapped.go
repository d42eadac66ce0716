package storage

import (
	"fmt"

	"github.com/pbnjay/memory"
)

// MappedBackend maps every segment file for its whole budget and lets
// writers copy records straight into the mapping. Files are grown to the
// budget when opened and truncated to their written length when closed.
type MappedBackend struct {
	maxSize int64
}

// NewMappedBackend creates a mapped backend for segments of maxSize bytes.
// A budget larger than the physical memory of the machine is refused.
func NewMappedBackend(maxSize int64) (*MappedBackend, error) {
	if !mapSupported {
		return nil, ErrUnsupported
	}
	if maxSize <= 0 {
		return nil, fmt.Errorf("storage: segment size must be positive, got %d", maxSize)
	}
	if total := memory.TotalMemory(); total > 0 && uint64(maxSize) > total {
		return nil, fmt.Errorf("storage: segment size %d exceeds physical memory %d", maxSize, total)
	}
	return &MappedBackend{maxSize: maxSize}, nil
}

// Capacity returns the segment budget; the whole segment is the arena.
func (b *MappedBackend) Capacity() int64 {
	return b.maxSize
}

// Open maps path, creating it if needed.
func (b *MappedBackend) Open(path string) (Segment, error) {
	return openMapped(path, b.maxSize)
}

// trimZeroTail returns the length of data without its trailing NUL bytes.
// A mapped segment left behind by a crash still carries the zeroed tail
// of its pre-allocation; every record ends in a newline, so the logical
// end is right after the last non-zero byte.
func trimZeroTail(data []byte) int {
	n := len(data)
	for n > 0 && data[n-1] == 0 {
		n--
	}
	return n
}
