//go:build unix

package storage

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const mapSupported = true

type mappedSegment struct {
	file *os.File
	data []byte
	size int64
}

func openMapped(path string, maxSize int64) (Segment, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	size := info.Size()

	if size < maxSize {
		if err := preallocate(file, maxSize); err != nil {
			file.Close()
			return nil, fmt.Errorf("storage: grow %s: %w", path, err)
		}
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(maxSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("storage: map %s: %w", path, err)
	}

	if size <= maxSize {
		size = int64(trimZeroTail(data[:size]))
	}

	return &mappedSegment{
		file: file,
		data: data,
		size: size,
	}, nil
}

func (s *mappedSegment) Size() int64 {
	return s.size
}

func (s *mappedSegment) Arena() ([]byte, int) {
	return s.data, int(min(s.size, int64(len(s.data))))
}

func (s *mappedSegment) Commit(n int) error {
	s.size += int64(n)
	return nil
}

// Write copies what fits into the mapping and writes the remainder
// through the file; MAP_SHARED keeps both views of the file coherent.
func (s *mappedSegment) Write(p []byte) error {
	var copied int
	if s.size < int64(len(s.data)) {
		copied = copy(s.data[s.size:], p)
	}
	if rest := p[copied:]; len(rest) > 0 {
		if _, err := s.file.WriteAt(rest, s.size+int64(copied)); err != nil {
			s.size += int64(copied)
			return fmt.Errorf("storage: write %s: %w", s.file.Name(), err)
		}
	}
	s.size += int64(len(p))
	return nil
}

func (s *mappedSegment) Close() error {
	if s.file == nil {
		return nil
	}

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	keep(unix.Msync(s.data, unix.MS_SYNC))
	keep(unix.Munmap(s.data))
	keep(s.file.Truncate(s.size))
	keep(s.file.Close())

	s.data = nil
	s.file = nil
	if firstErr != nil {
		return fmt.Errorf("storage: close mapped segment: %w", firstErr)
	}
	return nil
}
