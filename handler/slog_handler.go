package handler

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/philipp01105/seglog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// RecordWriter, so code written against log/slog ends up in the segment
// files. Attributes are appended to the message as key=value pairs.
type SlogHandler struct {
	writer *RecordWriter
	level  *core.LevelVar
	attrs  string
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter. level is consulted
// on every record, so changing it affects the adapter immediately.
func NewSlogHandler(w *RecordWriter, level *core.LevelVar) *SlogHandler {
	return &SlogHandler{
		writer: w,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.level.Enabled(slogLevelToCore(level))
}

// Handle renders the record and writes it with the record's call site.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var file string
	var line int
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		file, line = filepath.Base(frame.File), frame.Line
	}

	msg := record.Message
	if s.attrs != "" || record.NumAttrs() > 0 {
		var b strings.Builder
		b.WriteString(record.Message)
		b.WriteString(s.attrs)
		record.Attrs(func(a slog.Attr) bool {
			appendAttr(&b, s.group, a)
			return true
		})
		msg = b.String()
	}

	return s.writer.WriteRecord(slogLevelToCore(record.Level), file, line, msg)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{
		writer: s.writer,
		level:  s.level,
		attrs:  b.String(),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		writer: s.writer,
		level:  s.level,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
