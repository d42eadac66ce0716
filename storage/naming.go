package storage

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Extension is the file extension of every segment.
const Extension = ".log"

// SegmentPath returns folder/prefix.index.log.
func SegmentPath(folder, prefix string, index int) string {
	return filepath.Join(folder, prefix+"."+strconv.Itoa(index)+Extension)
}

// ParseIndex extracts the index from a segment file name belonging to
// prefix. ok is false for names that are not segments of prefix.
func ParseIndex(name, prefix string) (index int, ok bool) {
	rest, found := strings.CutPrefix(name, prefix+".")
	if !found {
		return 0, false
	}
	digits, found := strings.CutSuffix(rest, Extension)
	if !found || digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return index, true
}

// ScanIndices lists the indices of the segment files of prefix found in
// folder, in ascending order.
func ScanIndices(folder, prefix string) ([]int, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	var indices []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if idx, ok := ParseIndex(e.Name(), prefix); ok {
			indices = append(indices, idx)
		}
	}
	slices.Sort(indices)
	return indices, nil
}
