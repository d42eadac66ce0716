package handler

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// drainSpins is how many times drain polls the in-flight counter before
// it starts yielding the processor between polls.
const drainSpins = 64

// arena is one generation of the write region. Writers claim slots with
// a single atomic add on cursor. The cursor never moves back: the first
// reservation that crosses capacity seals the arena for good, and the
// rotating goroutine publishes a fresh arena instead of resetting this
// one. A writer still holding a stale arena can only fail on it.
type arena struct {
	buf      []byte
	start    int64
	capacity int64

	_        cpu.CacheLinePad
	cursor   atomic.Int64
	_        cpu.CacheLinePad
	inflight atomic.Int64
	_        cpu.CacheLinePad
	sealedAt atomic.Int64 // end of the last granted slot, -1 while open

	// retired is set once the arena's bytes were handed to the segment.
	// Only read and written under the rotation lock.
	retired bool
}

func newArena(buf []byte, start int) *arena {
	a := &arena{
		buf:      buf,
		start:    int64(start),
		capacity: int64(len(buf)),
	}
	a.cursor.Store(int64(start))
	a.sealedAt.Store(-1)
	return a
}

// reserve claims n bytes. On success the caller owns buf[off:off+n] and
// must call release once the bytes are copied.
//
// The in-flight count is raised before the cursor moves so that drain,
// which runs after the arena is sealed, cannot miss a writer whose slot
// was granted before the seal.
func (a *arena) reserve(n int64) (off int64, ok bool) {
	a.inflight.Add(1)
	end := a.cursor.Add(n)
	off = end - n
	if end <= a.capacity {
		return off, true
	}
	// Slots are granted in cursor order, so exactly one reservation
	// straddles capacity; every later one starts beyond it.
	if off <= a.capacity {
		a.sealedAt.Store(off)
	}
	a.inflight.Add(-1)
	return 0, false
}

func (a *arena) release() {
	a.inflight.Add(-1)
}

// seal closes the arena to new reservations. It is a no-op on an arena
// that already overflowed.
func (a *arena) seal() {
	if _, ok := a.reserve(a.capacity + 1); ok {
		panic("handler: seal reservation succeeded")
	}
}

// drain spins until every granted slot has been released. Slots are held
// only for the duration of a memcpy, so the wait is short; it burns CPU
// rather than parking the goroutine to keep rotation latency low.
// It reports how many polls it needed.
func (a *arena) drain() int {
	polls := 0
	for a.inflight.Load() != 0 {
		polls++
		if polls > drainSpins {
			runtime.Gosched()
		}
	}
	return polls
}

// written returns the number of bytes past start that hold records.
// Only meaningful after seal and drain.
func (a *arena) written() int64 {
	return a.sealedAt.Load() - a.start
}

func (a *arena) slot(off, n int64) []byte {
	return a.buf[off : off+n : off+n]
}
