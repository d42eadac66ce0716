//go:build !linux

package core

import "runtime"

// ThreadID returns the id of the calling goroutine. Platforms other than
// Linux expose no cheap OS thread id, so the goroutine id read from the
// stack header stands in for it.
func ThreadID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	// "goroutine 123 [running]:"
	const prefix = len("goroutine ")
	if len(b) <= prefix {
		return 0
	}
	var id uint64
	for _, c := range b[prefix:] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
