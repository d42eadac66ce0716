package formatter

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/seglog/core"
)

func fixedFormatter() (*RecordFormatter, int64) {
	tm := time.Date(2024, 5, 17, 13, 45, 9, 0, time.UTC)
	c := NewClock(time.UTC, func() time.Time { return tm })
	return NewRecordFormatter(c), tm.Unix()
}

func TestRecordFormatter_Layout(t *testing.T) {
	f, _ := fixedFormatter()

	tests := []struct {
		name   string
		level  core.Level
		thread uint64
		file   string
		line   int
		msg    string
		want   string
	}{
		{
			name:   "info",
			level:  core.InfoLevel,
			thread: 0x1a2b,
			file:   "main.go",
			line:   42,
			msg:    "hello",
			want:   "2024-05-17T13:45:09| INF |0x1a2b|(main.go,42)  hello" + eol,
		},
		{
			name:   "empty file and message",
			level:  core.ErrorLevel,
			thread: 7,
			file:   "",
			line:   0,
			msg:    "",
			want:   "2024-05-17T13:45:09| ERR |0x0007|(,0)  " + eol,
		},
		{
			name:   "wide thread id",
			level:  core.WarningLevel,
			thread: 0x123456,
			file:   "a.go",
			line:   100000,
			msg:    "x",
			want:   "2024-05-17T13:45:09| WRN |0x3456|(a.go,100000)  x" + eol,
		},
		{
			name:   "negative line",
			level:  core.DebugLevel,
			thread: 1,
			file:   "b.go",
			line:   -1,
			msg:    "m",
			want:   "2024-05-17T13:45:09| DBG |0x0001|(b.go,0)  m" + eol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := Size(len(tt.file), tt.line, len(tt.msg))
			if size != len(tt.want) {
				t.Fatalf("Size() = %d, want %d", size, len(tt.want))
			}
			buf := make([]byte, size+8)
			for i := range buf {
				buf[i] = '#'
			}
			n := f.Format(buf, tt.level, tt.thread, tt.file, tt.line, tt.msg)
			if n != size {
				t.Errorf("Format() = %d, want %d", n, size)
			}
			if got := string(buf[:n]); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			if tail := string(buf[n:]); tail != strings.Repeat("#", 8) {
				t.Errorf("Format() wrote past the record: %q", tail)
			}
		})
	}
}

func TestOverhead(t *testing.T) {
	if want := 38 + len(eol); Overhead != want {
		t.Errorf("Overhead = %d, want %d", Overhead, want)
	}
}

func TestRecordFormatter_NoAllocs(t *testing.T) {
	f := NewRecordFormatter(nil)
	msg := "the quick brown fox jumps over the lazy dog"
	buf := make([]byte, Size(len("record_test.go"), 123, len(msg)))
	allocs := testing.AllocsPerRun(100, func() {
		f.Format(buf, core.InfoLevel, 99, "record_test.go", 123, msg)
	})
	if allocs != 0 {
		t.Errorf("Format allocated %v times per call", allocs)
	}
}

func BenchmarkRecordFormatter(b *testing.B) {
	f := NewRecordFormatter(nil)
	msg := "OK my message is this: 'GET UP Man!'"
	buf := make([]byte, Size(len("bench.go"), 42, len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Format(buf, core.InfoLevel, 1, "bench.go", 42, msg)
	}
}

func ExampleRecordFormatter() {
	tm := time.Date(2024, 5, 17, 13, 45, 9, 0, time.UTC)
	f := NewRecordFormatter(NewClock(time.UTC, func() time.Time { return tm }))

	msg := "service started"
	buf := make([]byte, Size(len("main.go"), 12, len(msg)))
	n := f.Format(buf, core.InfoLevel, 0xbeef, "main.go", 12, msg)
	fmt.Print(strings.TrimRight(string(buf[:n]), "\r\n"))
	// Output: 2024-05-17T13:45:09| INF |0xbeef|(main.go,12)  service started
}
