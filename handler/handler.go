package handler

// Handler hands out memory for formatted records.
type Handler interface {
	// Reserve returns a slot of exactly n bytes for the caller to fill.
	Reserve(n int) (Slot, error)

	// Commit publishes a slot obtained from Reserve. Every successful
	// Reserve must be followed by exactly one Commit.
	Commit(s Slot) error

	// Close flushes pending records and releases resources
	Close() error
}

// Slot is a byte range reserved for one record.
type Slot struct {
	arena *arena
	buf   []byte
}

// NewSlot wraps buf as a slot that is not backed by an arena. Handlers
// receiving such a slot in Commit write its bytes themselves.
func NewSlot(buf []byte) Slot {
	return Slot{buf: buf}
}

// Bytes returns the memory of the slot.
func (s Slot) Bytes() []byte {
	return s.buf
}
