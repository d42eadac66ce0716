// Package storage implements the two interchangeable ways a segment file
// is written.
//
// The buffered backend owns one fixed buffer. Writers copy records into
// it and the buffer is appended to the segment file when it fills up or
// the segment rolls. The mapped backend grows each segment file to its
// budget, maps it, and lets writers copy records into the mapping; the
// file is truncated to the bytes actually written when it is closed.
//
// Both expose the same Segment contract: an arena to copy into, Commit to
// make a prefix of that arena part of the file, Write for records that do
// not fit any arena, and Close. Segments are never used concurrently; the
// handler package serialises every call behind its rotation lock.
//
// Segment files are named prefix.N.log, N growing by one per segment.
package storage
