package handler

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/seglog/core"
)

// ZapCore is a zapcore.Core writing into the segment files, for programs
// that already log through zap. Fields are rendered as key=value pairs
// after the message, sorted by key.
type ZapCore struct {
	writer *RecordWriter
	level  *core.LevelVar
	fields []zapcore.Field
}

// NewZapCore creates a zapcore.Core adapter sharing level with the
// caller.
func NewZapCore(w *RecordWriter, level *core.LevelVar) *ZapCore {
	return &ZapCore{writer: w, level: level}
}

// Enabled reports whether records at lvl are written.
func (c *ZapCore) Enabled(lvl zapcore.Level) bool {
	return c.level.Enabled(zapLevelToCore(lvl))
}

// With returns a core that adds fields to every record.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	return &ZapCore{
		writer: c.writer,
		level:  c.level,
		fields: append(slices.Clip(c.fields), fields...),
	}
}

// Check adds the core to ce when ent is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders ent and fields into one record.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var file string
	var line int
	if ent.Caller.Defined {
		file, line = filepath.Base(ent.Caller.File), ent.Caller.Line
	}

	msg := ent.Message
	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		var b strings.Builder
		b.WriteString(ent.Message)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
		}
		msg = b.String()
	}

	return c.writer.WriteRecord(zapLevelToCore(ent.Level), file, line, msg)
}

// Sync flushes buffered records when the handler supports it.
func (c *ZapCore) Sync() error {
	if s, ok := c.writer.Handler().(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl >= zapcore.WarnLevel:
		return core.WarningLevel
	case lvl >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
