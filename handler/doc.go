// Package handler turns a storage backend into a concurrent, rotating
// sequence of segment files.
//
// A SegmentHandler hands out slots from an arena: the current segment's
// mapping, or the buffered backend's buffer. Reserve is one atomic add on
// the arena cursor plus an in-flight counter bump; writers then copy
// their record without any coordination and Commit drops the counter.
//
// The reservation that first crosses the arena capacity seals it. The
// goroutine that takes the rotation lock drains the in-flight writers
// with a short spin, commits the arena to its segment, rolls to the next
// segment file when the pending record would break the size budget,
// deletes segments that fell out of the retention window, and publishes
// a new arena. Goroutines that queued on the lock see the new arena and
// retry.
//
// Records longer than any arena are formatted into a private buffer and
// written through the backend under the rotation lock, alone in a fresh
// segment when they would not fit the current one.
//
// A failure while opening the next segment is returned to the writer
// that triggered the rotation and to every writer after it.
//
// SlogHandler and ZapCore adapt log/slog and zap to the same files.
package handler
