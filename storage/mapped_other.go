//go:build !unix

package storage

const mapSupported = false

func openMapped(path string, maxSize int64) (Segment, error) {
	return nil, ErrUnsupported
}
