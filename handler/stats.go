package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// Rolls counts segments closed because they reached their budget
	Rolls uint64
	// Flushes counts arenas retired into their segment
	Flushes uint64
	// Oversized counts records written around the arena
	Oversized uint64
	// Evicted counts segment files deleted by retention
	Evicted uint64
	// DrainPolls counts in-flight polls spent waiting for writers
	DrainPolls uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementRolls atomically increments the roll counter
func (s *Stats) IncrementRolls() {
	atomic.AddUint64(&s.Rolls, 1)
}

// IncrementFlushes atomically increments the flush counter
func (s *Stats) IncrementFlushes() {
	atomic.AddUint64(&s.Flushes, 1)
}

// IncrementOversized atomically increments the oversized counter
func (s *Stats) IncrementOversized() {
	atomic.AddUint64(&s.Oversized, 1)
}

// AddEvicted atomically adds n to the eviction counter
func (s *Stats) AddEvicted(n int) {
	atomic.AddUint64(&s.Evicted, uint64(n))
}

// AddDrainPolls atomically adds n to the drain poll counter
func (s *Stats) AddDrainPolls(n int) {
	atomic.AddUint64(&s.DrainPolls, uint64(n))
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.Rolls, 0)
	atomic.StoreUint64(&s.Flushes, 0)
	atomic.StoreUint64(&s.Oversized, 0)
	atomic.StoreUint64(&s.Evicted, 0)
	atomic.StoreUint64(&s.DrainPolls, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Rolls      uint64
	Flushes    uint64
	Oversized  uint64
	Evicted    uint64
	DrainPolls uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Rolls:      atomic.LoadUint64(&s.Rolls),
		Flushes:    atomic.LoadUint64(&s.Flushes),
		Oversized:  atomic.LoadUint64(&s.Oversized),
		Evicted:    atomic.LoadUint64(&s.Evicted),
		DrainPolls: atomic.LoadUint64(&s.DrainPolls),
	}
}
