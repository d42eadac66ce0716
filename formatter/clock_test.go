package formatter

import (
	"sync"
	"testing"
	"time"
)

func TestWriteDateTime(t *testing.T) {
	times := []time.Time{
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 12, 31, 12, 30, 5, 0, time.UTC),
		time.Date(2100, 3, 1, 1, 2, 3, 0, time.UTC),
		time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC),
	}
	for _, tm := range times {
		var buf [DateTimeLen]byte
		WriteDateTime(buf[:], tm.Unix())
		want := tm.Format("2006-01-02T15:04:05")
		if string(buf[:]) != want {
			t.Errorf("WriteDateTime(%v) = %q, want %q", tm, buf[:], want)
		}
	}
}

func TestWriteDateTime_EveryDayOfLeapYear(t *testing.T) {
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	for d := 0; d < 366; d++ {
		tm := start.AddDate(0, 0, d)
		var buf [DateTimeLen]byte
		WriteDateTime(buf[:], tm.Unix())
		if want := tm.Format("2006-01-02T15:04:05"); string(buf[:]) != want {
			t.Fatalf("day %d: got %q, want %q", d, buf[:], want)
		}
	}
}

// fakeNow is a settable time source.
type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) set(t time.Time) {
	f.mu.Lock()
	f.t = t
	f.mu.Unlock()
}

func TestClock_LocalOffset(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	src := &fakeNow{t: time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)}
	c := NewClock(loc, src.now)

	got := c.LocalSeconds()
	want := src.t.Unix() + 2*3600
	if got != want {
		t.Errorf("LocalSeconds() = %d, want %d", got, want)
	}
}

func TestClock_RefreshAtMidnight(t *testing.T) {
	// Europe-like zone switching offset at 2024-03-31 01:00 UTC.
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}
	src := &fakeNow{t: time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)}
	c := NewClock(loc, src.now)

	if got, want := c.offset.Load(), int64(3600); got != want {
		t.Fatalf("winter offset = %d, want %d", got, want)
	}

	// Past local midnight after the switch: the next call recomputes.
	src.set(time.Date(2024, 3, 31, 22, 30, 0, 0, time.UTC))
	local := c.LocalSeconds()
	if got, want := c.offset.Load(), int64(7200); got != want {
		t.Fatalf("summer offset = %d, want %d", got, want)
	}

	var buf [DateTimeLen]byte
	WriteDateTime(buf[:], local)
	if want := src.now().In(loc).Format("2006-01-02T15:04:05"); string(buf[:]) != want {
		t.Errorf("rendered %q, want %q", buf[:], want)
	}
}

func TestClock_NoRefreshWithinDay(t *testing.T) {
	src := &fakeNow{t: time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC)}
	c := NewClock(time.UTC, src.now)
	next := c.next.Load()

	src.set(time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC))
	c.LocalSeconds()
	if c.next.Load() != next {
		t.Error("next midnight moved before the day ended")
	}

	src.set(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	c.LocalSeconds()
	if c.next.Load() != next+secondsPerDay {
		t.Errorf("next midnight = %d, want %d", c.next.Load(), next+secondsPerDay)
	}
}
