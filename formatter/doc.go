// Package formatter renders log records into a fixed text layout:
//
//	YYYY-MM-DDTHH:MM:SS| LVL |0xTTTT|(file.go,LINE)  message
//
// Only the call site file name, the line digits and the message vary in
// length, so Size computes the final length before any byte is written.
// The writer reserves exactly that many bytes and Format fills them in
// place: integers are written back to front from the least significant
// digit, the thread id as four hex digits, and the date from a Clock that
// caches the local UTC offset until the next local midnight.
//
// Nothing in this package allocates on the formatting path.
package formatter
