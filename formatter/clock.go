package formatter

import (
	"sync"
	"sync/atomic"
	"time"
)

const secondsPerDay = 86400

// Clock yields local wall-clock seconds without consulting the time zone
// database on every call. The UTC offset is cached and recomputed by the
// first caller that crosses local midnight; every other call is two
// atomic loads and an add.
type Clock struct {
	offset atomic.Int64 // seconds east of UTC
	next   atomic.Int64 // local seconds of the next midnight
	mu     sync.Mutex
	loc    *time.Location
	now    func() time.Time
}

// NewClock returns a Clock for loc reading the time from now. A nil loc
// means time.Local and a nil now means time.Now.
func NewClock(loc *time.Location, now func() time.Time) *Clock {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	c := &Clock{loc: loc, now: now}
	c.refresh(now())
	return c
}

// LocalSeconds returns the current time as seconds since the epoch,
// shifted by the local UTC offset.
func (c *Clock) LocalSeconds() int64 {
	t := c.now()
	local := t.Unix() + c.offset.Load()
	if local >= c.next.Load() {
		return c.refresh(t)
	}
	return local
}

func (c *Clock) refresh(t time.Time) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, off := t.In(c.loc).Zone()
	local := t.Unix() + int64(off)
	c.offset.Store(int64(off))
	c.next.Store(floorDiv(local, secondsPerDay)*secondsPerDay + secondsPerDay)
	return local
}

// DateTimeLen is the width of "YYYY-MM-DDTHH:MM:SS".
const DateTimeLen = 19

// WriteDateTime renders local seconds as YYYY-MM-DDTHH:MM:SS into dst.
func WriteDateTime(dst []byte, local int64) {
	_ = dst[DateTimeLen-1]
	days := floorDiv(local, secondsPerDay)
	secs := uint32(local - days*secondsPerDay)

	y, m, d := civilFromDays(days)
	WriteUint(dst[0:4], uint64(y))
	dst[4] = '-'
	WriteTwoDigits(dst[5:7], m)
	dst[7] = '-'
	WriteTwoDigits(dst[8:10], d)
	dst[10] = 'T'
	WriteTwoDigits(dst[11:13], secs/3600)
	dst[13] = ':'
	WriteTwoDigits(dst[14:16], secs/60%60)
	dst[16] = ':'
	WriteTwoDigits(dst[17:19], secs%60)
}

// civilFromDays converts days since 1970-01-01 to a proleptic Gregorian
// date, working in 400-year eras that start on March 1st.
func civilFromDays(z int64) (year int64, month, day uint32) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = uint32(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = uint32(mp + 3)
	} else {
		month = uint32(mp - 9)
	}
	year = yoe + era*400
	if month <= 2 {
		year++
	}
	return year, month, day
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
