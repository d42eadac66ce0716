package storage

import (
	"fmt"
	"os"
)

// DefaultBufferSize is the arena size of the buffered backend.
const DefaultBufferSize = 64 * 1024

// BufferedBackend appends to segment files through one shared in-process
// buffer. Writes go straight to the file descriptor; os.File keeps no
// buffer of its own, so a committed arena is in the kernel once Commit
// returns.
type BufferedBackend struct {
	maxSize int64
	buf     []byte
}

// NewBufferedBackend creates a buffered backend for segments of maxSize
// bytes. bufferSize <= 0 selects DefaultBufferSize.
func NewBufferedBackend(maxSize int64, bufferSize int) (*BufferedBackend, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("storage: segment size must be positive, got %d", maxSize)
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &BufferedBackend{
		maxSize: maxSize,
		buf:     make([]byte, bufferSize),
	}, nil
}

// Capacity returns the smaller of the buffer and the segment budget.
func (b *BufferedBackend) Capacity() int64 {
	return min(int64(len(b.buf)), b.maxSize)
}

// Open opens path for appending.
func (b *BufferedBackend) Open(path string) (Segment, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	return &bufferedSegment{
		backend: b,
		file:    file,
		size:    info.Size(),
	}, nil
}

type bufferedSegment struct {
	backend *BufferedBackend
	file    *os.File
	size    int64
}

func (s *bufferedSegment) Size() int64 {
	return s.size
}

// Arena never extends past the segment budget, so a flush cannot push
// the file over it.
func (s *bufferedSegment) Arena() ([]byte, int) {
	room := s.backend.maxSize - s.size
	if room < 0 {
		room = 0
	}
	buf := s.backend.buf
	return buf[:min(int64(len(buf)), room)], 0
}

func (s *bufferedSegment) Commit(n int) error {
	if n == 0 {
		return nil
	}
	return s.Write(s.backend.buf[:n])
}

func (s *bufferedSegment) Write(p []byte) error {
	n, err := s.file.Write(p)
	s.size += int64(n)
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", s.file.Name(), err)
	}
	return nil
}

func (s *bufferedSegment) Close() error {
	if s.file == nil {
		return nil
	}
	syncErr := s.file.Sync()
	closeErr := s.file.Close()
	s.file = nil
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}
