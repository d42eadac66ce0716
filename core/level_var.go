package core

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// LevelVar is a process-wide minimum severity that can be changed while
// other goroutines are logging. Readers never lock; a writer's update may
// be observed a little late, which is fine since filtering only saves work.
type LevelVar struct {
	_   cpu.CacheLinePad
	val atomic.Int32
	_   cpu.CacheLinePad
}

// NewLevelVar returns a LevelVar initialised to l.
func NewLevelVar(l Level) *LevelVar {
	v := &LevelVar{}
	v.Set(l)
	return v
}

// Level returns the current threshold.
func (v *LevelVar) Level() Level {
	return Level(v.val.Load())
}

// Set changes the threshold.
func (v *LevelVar) Set(l Level) {
	v.val.Store(int32(l))
}

// Enabled reports whether a record at level l would be written.
func (v *LevelVar) Enabled(l Level) bool {
	return l.Enabled(v.Level())
}
