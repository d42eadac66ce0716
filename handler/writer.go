package handler

import (
	"github.com/philipp01105/seglog/core"
	"github.com/philipp01105/seglog/formatter"
)

// RecordWriter formats records straight into slots of a Handler.
type RecordWriter struct {
	handler   Handler
	formatter *formatter.RecordFormatter
}

// NewRecordWriter creates a RecordWriter. A nil formatter stamps records
// with the local time.
func NewRecordWriter(h Handler, f *formatter.RecordFormatter) *RecordWriter {
	if f == nil {
		f = formatter.NewRecordFormatter(nil)
	}
	return &RecordWriter{handler: h, formatter: f}
}

// WriteRecord reserves exactly the record's length, renders the record
// into the slot and commits it.
func (w *RecordWriter) WriteRecord(level core.Level, file string, line int, msg string) error {
	slot, err := w.handler.Reserve(formatter.Size(len(file), line, len(msg)))
	if err != nil {
		return err
	}
	w.formatter.Format(slot.Bytes(), level, core.ThreadID(), file, line, msg)
	return w.handler.Commit(slot)
}

// Handler returns the handler records are written to.
func (w *RecordWriter) Handler() Handler {
	return w.handler
}
