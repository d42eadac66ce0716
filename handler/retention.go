package handler

// RetentionQueue remembers which segment indices are on disk, oldest
// first, and hands back the ones that fall out of the retention window.
type RetentionQueue struct {
	max     int
	indices []int
}

// NewRetentionQueue returns a queue keeping at most max indices. max <= 0
// keeps everything.
func NewRetentionQueue(max int) *RetentionQueue {
	return &RetentionQueue{max: max}
}

// Push records a newly created segment and returns the indices that must
// be deleted, oldest first.
func (q *RetentionQueue) Push(index int) []int {
	q.indices = append(q.indices, index)
	if q.max <= 0 || len(q.indices) <= q.max {
		return nil
	}
	n := len(q.indices) - q.max
	evicted := make([]int, n)
	copy(evicted, q.indices[:n])
	q.indices = append(q.indices[:0], q.indices[n:]...)
	return evicted
}

// Len returns the number of retained indices.
func (q *RetentionQueue) Len() int {
	return len(q.indices)
}

// Indices returns a copy of the retained indices, oldest first.
func (q *RetentionQueue) Indices() []int {
	out := make([]int, len(q.indices))
	copy(out, q.indices)
	return out
}
