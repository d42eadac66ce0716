package formatter

import (
	"github.com/philipp01105/seglog/core"
)

// Field offsets of the fixed part of a record:
//
//	2024-05-17T13:45:09| INF |0x1a2b|(main.go,42)  message\n
const (
	levelOffset  = DateTimeLen + 1           // after '|'
	threadOffset = levelOffset + core.TokenLen + 2
	threadDigits = 4
	callerOffset = threadOffset + 2 + threadDigits + 2 // after "|("

	// Overhead is the number of bytes of a record that do not depend on
	// the call site or the message.
	Overhead = callerOffset + len(",)  ") + len(eol)
)

// RecordFormatter renders records into caller supplied memory. It never
// allocates and never fails; Size must be used to size the destination.
type RecordFormatter struct {
	clock *Clock
}

// NewRecordFormatter returns a formatter stamping records with clock.
// A nil clock uses the local time zone and time.Now.
func NewRecordFormatter(clock *Clock) *RecordFormatter {
	if clock == nil {
		clock = NewClock(nil, nil)
	}
	return &RecordFormatter{clock: clock}
}

// Size returns the exact length of the record for a call site file name
// of fileLen bytes, the given line and a message of msgLen bytes.
func Size(fileLen, line, msgLen int) int {
	return Overhead + fileLen + CountDigits(lineValue(line)) + msgLen
}

// Format writes the record into dst, which must be at least
// Size(len(file), line, len(msg)) bytes long. It returns the number of
// bytes written.
func (f *RecordFormatter) Format(dst []byte, level core.Level, thread uint64, file string, line int, msg string) int {
	return f.FormatAt(dst, f.clock.LocalSeconds(), level, thread, file, line, msg)
}

// FormatAt is Format with an explicit timestamp in local seconds.
func (f *RecordFormatter) FormatAt(dst []byte, local int64, level core.Level, thread uint64, file string, line int, msg string) int {
	lv := lineValue(line)
	digits := CountDigits(lv)
	n := Overhead + len(file) + digits + len(msg)
	dst = dst[:n]

	WriteDateTime(dst, local)
	dst[DateTimeLen] = '|'
	tok := level.Token()
	copy(dst[levelOffset:], tok[:])
	dst[levelOffset+core.TokenLen] = ' '
	dst[levelOffset+core.TokenLen+1] = '|'
	dst[threadOffset] = '0'
	dst[threadOffset+1] = 'x'
	WriteHex(dst[threadOffset+2:threadOffset+2+threadDigits], thread)
	dst[callerOffset-2] = '|'
	dst[callerOffset-1] = '('

	i := callerOffset + copy(dst[callerOffset:], file)
	dst[i] = ','
	i++
	WriteUint(dst[i:i+digits], lv)
	i += digits
	dst[i] = ')'
	dst[i+1] = ' '
	dst[i+2] = ' '
	i += 3
	i += copy(dst[i:], msg)
	copy(dst[i:], eol)
	return n
}

func lineValue(line int) uint64 {
	if line < 0 {
		return 0
	}
	return uint64(line)
}
