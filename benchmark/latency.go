package benchmark

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// LatencyReport summarizes the per-call latency of a logging function.
type LatencyReport struct {
	Calls      int
	Elapsed    time.Duration
	Throughput float64 // calls per second
	P50        time.Duration
	P90        time.Duration
	P99        time.Duration
	P999       time.Duration
	Max        time.Duration
}

// MeasureLatency calls fn perWorker times from each of workers goroutines
// and reports throughput and latency percentiles. The first error stops
// the measurement.
func MeasureLatency(workers, perWorker int, fn func() error) (LatencyReport, error) {
	samples := make([][]time.Duration, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	start := time.Now()
	for w := 0; w < workers; w++ {
		samples[w] = make([]time.Duration, 0, perWorker)
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				t0 := time.Now()
				if err := fn(); err != nil {
					errs[w] = err
					return
				}
				samples[w] = append(samples[w], time.Since(t0))
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	for _, err := range errs {
		if err != nil {
			return LatencyReport{}, err
		}
	}

	all := slices.Concat(samples...)
	slices.Sort(all)
	r := LatencyReport{
		Calls:   len(all),
		Elapsed: elapsed,
		P50:     percentile(all, 0.50),
		P90:     percentile(all, 0.90),
		P99:     percentile(all, 0.99),
		P999:    percentile(all, 0.999),
	}
	if len(all) > 0 {
		r.Max = all[len(all)-1]
	}
	if elapsed > 0 {
		r.Throughput = float64(len(all)) / elapsed.Seconds()
	}
	return r, nil
}

// percentile returns the nearest-rank percentile of sorted samples.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(p*float64(len(sorted)) + 0.5)
	rank = max(1, min(rank, len(sorted)))
	return sorted[rank-1]
}

func (r LatencyReport) String() string {
	return fmt.Sprintf("%d calls in %v (%.0f/s) p50=%v p90=%v p99=%v p99.9=%v max=%v",
		r.Calls, r.Elapsed.Round(time.Millisecond), r.Throughput, r.P50, r.P90, r.P99, r.P999, r.Max)
}
