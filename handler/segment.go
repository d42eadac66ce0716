package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/seglog/storage"
)

var (
	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("handler: closed")
	// ErrInvalidConfig wraps every configuration error.
	ErrInvalidConfig = errors.New("handler: invalid configuration")
)

// SegmentConfig holds configuration for a segment handler
type SegmentConfig struct {
	// Folder holds the segment files; it is created if missing
	Folder string
	// Prefix names the segments: Prefix.N.log
	Prefix string
	// MaxSize is the segment budget in bytes
	MaxSize int64
	// MaxFiles is the number of segment files kept on disk (0 = keep all)
	MaxFiles int
	// Backend writes the segment files
	Backend storage.Backend
}

// SegmentHandler writes records into a rotating sequence of segment
// files. Any number of goroutines may reserve and commit slots
// concurrently; the only lock is taken when the arena runs full.
type SegmentHandler struct {
	current atomic.Pointer[arena]

	// mu is the rotation lock. It guards everything below and is never
	// held while a writer copies a record.
	mu        sync.Mutex
	folder    string
	prefix    string
	maxSize   int64
	limit     int64
	backend   storage.Backend
	seg       storage.Segment
	index     int
	retention *RetentionQueue
	err       error
	evictErr  error
	closed    bool

	stats *Stats
}

// NewSegmentHandler scans cfg.Folder for segments of cfg.Prefix, reopens
// the newest one positioned after its existing bytes, and applies the
// retention window to what it found.
func NewSegmentHandler(cfg SegmentConfig) (*SegmentHandler, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Folder, 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	indices, err := storage.ScanIndices(cfg.Folder, cfg.Prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(indices) == 0 {
		indices = []int{0}
	}

	h := &SegmentHandler{
		folder:    cfg.Folder,
		prefix:    cfg.Prefix,
		maxSize:   cfg.MaxSize,
		limit:     cfg.Backend.Capacity(),
		backend:   cfg.Backend,
		index:     indices[len(indices)-1],
		retention: NewRetentionQueue(cfg.MaxFiles),
		stats:     NewStats(),
	}

	for _, idx := range indices {
		h.evict(h.retention.Push(idx))
	}

	seg, err := h.backend.Open(h.path(h.index))
	if err != nil {
		return nil, fmt.Errorf("handler: open segment %d: %w", h.index, err)
	}
	h.seg = seg
	h.current.Store(newArena(seg.Arena()))

	return h, nil
}

func (c SegmentConfig) validate() error {
	switch {
	case c.Folder == "":
		return fmt.Errorf("%w: folder is required", ErrInvalidConfig)
	case c.Prefix == "":
		return fmt.Errorf("%w: prefix is required", ErrInvalidConfig)
	case strings.ContainsAny(c.Prefix, `/\`):
		return fmt.Errorf("%w: prefix %q contains a path separator", ErrInvalidConfig, c.Prefix)
	case c.MaxSize <= 0:
		return fmt.Errorf("%w: segment size must be positive", ErrInvalidConfig)
	case c.MaxFiles < 0:
		return fmt.Errorf("%w: negative file count", ErrInvalidConfig)
	case c.Backend == nil:
		return fmt.Errorf("%w: backend is required", ErrInvalidConfig)
	}
	return nil
}

// Reserve returns a slot of n bytes. Records larger than the arena get a
// private buffer and are written directly by Commit.
func (h *SegmentHandler) Reserve(n int) (Slot, error) {
	size := int64(n)
	if size > h.limit {
		return NewSlot(make([]byte, n)), nil
	}

	for {
		a := h.current.Load()
		if off, ok := a.reserve(size); ok {
			return Slot{arena: a, buf: a.slot(off, size)}, nil
		}
		if err := h.rotate(a, size); err != nil {
			return Slot{}, err
		}
	}
}

// Commit releases an arena slot, or writes a private slot through the
// backend under the rotation lock.
func (h *SegmentHandler) Commit(s Slot) error {
	if s.arena != nil {
		s.arena.release()
		return nil
	}
	return h.writeDirect(s.buf)
}

// rotate replaces the full arena. Goroutines that lose the race for the
// lock find a different arena published and go back to reserving.
func (h *SegmentHandler) rotate(full *arena, need int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.usable(); err != nil {
		return err
	}
	if h.current.Load() != full {
		return nil
	}
	return h.fail(h.advance(need, nil))
}

func (h *SegmentHandler) writeDirect(p []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.usable(); err != nil {
		return err
	}
	h.stats.IncrementOversized()
	return h.fail(h.advance(int64(len(p)), p))
}

// Sync pushes everything committed so far into the current segment file.
func (h *SegmentHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.usable(); err != nil {
		return err
	}
	return h.fail(h.advance(0, nil))
}

// advance retires the current arena into the segment, rolls to the next
// segment when a record of need bytes no longer fits, writes direct if
// given, and publishes a fresh arena. h.mu must be held.
func (h *SegmentHandler) advance(need int64, direct []byte) error {
	if err := h.retire(h.current.Load()); err != nil {
		return err
	}

	if size := h.seg.Size(); size > 0 && size+need > h.maxSize {
		if err := h.roll(); err != nil {
			return err
		}
	}

	if direct != nil {
		if err := h.seg.Write(direct); err != nil {
			return err
		}
	}

	h.current.Store(newArena(h.seg.Arena()))
	return nil
}

// retire seals a, waits for its writers and hands its bytes to the
// segment. h.mu must be held.
func (h *SegmentHandler) retire(a *arena) error {
	if a.retired {
		return nil
	}
	a.seal()
	h.stats.AddDrainPolls(a.drain())
	a.retired = true

	n := a.written()
	if n == 0 {
		return nil
	}
	h.stats.IncrementFlushes()
	return h.seg.Commit(int(n))
}

// roll closes the current segment and opens the next index.
// h.mu must be held.
func (h *SegmentHandler) roll() error {
	seg := h.seg
	h.seg = nil
	if err := seg.Close(); err != nil {
		return fmt.Errorf("handler: close segment %d: %w", h.index, err)
	}

	h.index++
	h.evict(h.retention.Push(h.index))

	next, err := h.backend.Open(h.path(h.index))
	if err != nil {
		return fmt.Errorf("handler: open segment %d: %w", h.index, err)
	}
	h.seg = next
	h.stats.IncrementRolls()
	return nil
}

// evict deletes segments that left the retention window. A file that is
// already gone is fine; other failures are reported by Close.
func (h *SegmentHandler) evict(indices []int) {
	for _, idx := range indices {
		err := os.Remove(h.path(idx))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			h.evictErr = errors.Join(h.evictErr, err)
			continue
		}
		h.stats.AddEvicted(1)
	}
}

func (h *SegmentHandler) usable() error {
	if h.closed {
		return ErrClosed
	}
	return h.err
}

// fail makes err sticky: once a segment cannot be written, every later
// write reports the same failure.
func (h *SegmentHandler) fail(err error) error {
	if err != nil {
		h.err = err
	}
	return err
}

func (h *SegmentHandler) path(index int) string {
	return storage.SegmentPath(h.folder, h.prefix, index)
}

// Index returns the index of the segment currently written.
func (h *SegmentHandler) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

// Retained returns the segment indices kept on disk, oldest first.
func (h *SegmentHandler) Retained() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.retention.Indices()
}

// Stats returns a snapshot of the current statistics
func (h *SegmentHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes pending records, truncates the active segment to its
// written length and closes it. Later writes fail with ErrClosed.
func (h *SegmentHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	var errs []error
	if h.seg != nil {
		errs = append(errs, h.retire(h.current.Load()))
		errs = append(errs, h.seg.Close())
		h.seg = nil
	}
	errs = append(errs, h.evictErr)
	return errors.Join(errs...)
}
