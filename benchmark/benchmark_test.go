package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/philipp01105/seglog/core"
	"github.com/philipp01105/seglog/formatter"
	"github.com/philipp01105/seglog/handler"
	"github.com/philipp01105/seglog/logger"
	"github.com/philipp01105/seglog/storage"
)

var sinkInt int

// Benchmark formatting a record into a preallocated buffer
func BenchmarkFormat(b *testing.B) {
	f := formatter.NewRecordFormatter(nil)
	dst := make([]byte, formatter.Size(len("server.go"), 1234, len("request handled")))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = f.Format(dst, core.InfoLevel, 0x1a2b, "server.go", 1234, "request handled")
	}
}

// Benchmark the writer without any storage behind it
func BenchmarkRecordWriter_Noop(b *testing.B) {
	w := handler.NewRecordWriter(newNoopHandler(), nil)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.WriteRecord(core.InfoLevel, "server.go", 1234, "request handled")
	}
}

// Benchmark message sizes against the buffered arena
func BenchmarkLogger_MessageSize(b *testing.B) {
	for _, n := range []int{16, 256, 4096, 128 * 1024} {
		msg := strings.Repeat("m", n)
		b.Run(fmt.Sprintf("%dB", n), func(b *testing.B) {
			l := newSeglog(b, seglogConfig(false))
			defer l.Close()
			b.SetBytes(int64(n))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Info(msg)
			}
		})
	}
}

// Benchmark small segments, where most time goes into rolling
func BenchmarkLogger_Rotation(b *testing.B) {
	for _, kind := range []storage.Kind{storage.Buffered, storage.Mapped} {
		b.Run(kind.String(), func(b *testing.B) {
			cfg := seglogConfig(kind == storage.Mapped)
			cfg.MaxSizeKB = 16
			cfg.MaxFiles = 4
			l := newSeglog(b, cfg)
			defer l.Close()
			b.ReportAllocs()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					l.Info("rotation message")
				}
			})
			b.StopTimer()
			st := l.Stats()
			b.ReportMetric(float64(st.Rolls)/float64(b.N), "rolls/op")
			b.ReportMetric(float64(st.DrainPolls)/float64(max(st.Flushes, 1)), "polls/flush")
		})
	}
}

// Benchmark contention with a growing number of goroutines
func BenchmarkLogger_Goroutines(b *testing.B) {
	for _, p := range []int{1, 4, 16, 64} {
		b.Run(fmt.Sprintf("x%d", p), func(b *testing.B) {
			l := newSeglog(b, seglogConfig(false))
			defer l.Close()
			b.SetParallelism(p)
			b.ReportAllocs()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					l.Info("contended message")
				}
			})
		})
	}
}

// Benchmark the coarse clock against time.Now per record
func BenchmarkLogger_CoarseClock(b *testing.B) {
	for _, coarse := range []bool{false, true} {
		b.Run(fmt.Sprintf("coarse=%v", coarse), func(b *testing.B) {
			cfg := seglogConfig(false)
			cfg.CoarseClock = coarse
			l := newSeglog(b, cfg)
			defer l.Close()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.LogAt(logger.InfoLevel, "main.go", 1, "clock message")
			}
		})
	}
}
