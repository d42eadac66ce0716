// Package core defines the small shared types used across seglog.
//
// Level orders severities Debug < Info < Warning < Error < Off and knows
// the 4-byte token each one renders as. LevelVar is the mutable threshold
// consulted before any formatting work; it is read with a single atomic
// load and padded onto its own cache line.
//
// GetCaller captures the file and line of a log call, ThreadID identifies
// the producing thread, and the coarse clock offers a cached time.Now for
// callers that accept 500µs resolution.
package core
