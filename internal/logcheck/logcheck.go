// Package logcheck reads segment files back for tests. It parses every
// line against the record layout, so a torn or interleaved record shows
// up as a parse error instead of a silently wrong count.
package logcheck

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/philipp01105/seglog/storage"
)

// Record is one parsed log line.
type Record struct {
	Time    string
	Level   string
	Thread  string
	File    string
	Line    int
	Message string
}

// Segment is one parsed segment file.
type Segment struct {
	Index   int
	Path    string
	Size    int64
	Records []Record
}

var recordRE = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})\| (DBG|INF|WRN|ERR) \|0x([0-9a-f]{4})\|\((.*?),(\d+)\)  (.*)$`)

// ParseRecord parses one line without its line terminator.
func ParseRecord(line string) (Record, error) {
	m := recordRE.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("logcheck: malformed record %q", line)
	}
	n, err := strconv.Atoi(m[5])
	if err != nil {
		return Record{}, fmt.Errorf("logcheck: line number in %q: %w", line, err)
	}
	return Record{
		Time:    m[1],
		Level:   m[2],
		Thread:  m[3],
		File:    m[4],
		Line:    n,
		Message: m[6],
	}, nil
}

// ParseFile parses every record of a segment file. The file must end
// with a complete record.
func ParseFile(path string) ([]Record, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	if len(data) == 0 {
		return nil, 0, nil
	}
	if data[len(data)-1] != '\n' {
		return nil, 0, fmt.Errorf("logcheck: %s ends inside a record", path)
	}

	lines := bytes.Split(data[:len(data)-1], []byte{'\n'})
	records := make([]Record, 0, len(lines))
	for i, l := range lines {
		r, err := ParseRecord(strings.TrimSuffix(string(l), "\r"))
		if err != nil {
			return nil, 0, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		records = append(records, r)
	}
	return records, int64(len(data)), nil
}

// ReadSegments parses every segment of prefix in folder, oldest first.
func ReadSegments(folder, prefix string) ([]Segment, error) {
	indices, err := storage.ScanIndices(folder, prefix)
	if err != nil {
		return nil, err
	}
	segments := make([]Segment, 0, len(indices))
	for _, idx := range indices {
		path := storage.SegmentPath(folder, prefix, idx)
		records, size, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{Index: idx, Path: path, Size: size, Records: records})
	}
	return segments, nil
}

// Messages returns the messages of all segments in file order.
func Messages(segments []Segment) []string {
	var out []string
	for _, s := range segments {
		for _, r := range s.Records {
			out = append(out, r.Message)
		}
	}
	return out
}

// CheckUnique verifies that every message in want appears exactly once
// in got and that got holds nothing else.
func CheckUnique(got, want []string) error {
	seen := make(map[string]int, len(got))
	for _, m := range got {
		seen[m]++
	}
	for _, m := range want {
		switch seen[m] {
		case 1:
			delete(seen, m)
		case 0:
			return fmt.Errorf("logcheck: message %q missing", m)
		default:
			return fmt.Errorf("logcheck: message %q written %d times", m, seen[m])
		}
	}
	for m := range seen {
		return fmt.Errorf("logcheck: unexpected message %q", m)
	}
	return nil
}
