package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Int64 // unix nanoseconds
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and lives as long as the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		coarseNow.Store(time.Now().UnixNano())
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for t := range ticker.C {
				coarseNow.Store(t.UnixNano())
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return time.Unix(0, coarseNow.Load())
}
