package benchmark

import (
	"github.com/philipp01105/seglog/handler"
)

// noopHandler hands out one scratch buffer and drops every record. It
// measures formatting alone and is not safe for concurrent use.
type noopHandler struct {
	buf []byte
}

func newNoopHandler() handler.Handler {
	return &noopHandler{buf: make([]byte, 4096)}
}

func (h *noopHandler) Reserve(n int) (handler.Slot, error) {
	if n > len(h.buf) {
		h.buf = make([]byte, n)
	}
	return handler.NewSlot(h.buf[:n]), nil
}

func (h *noopHandler) Commit(s handler.Slot) error {
	_ = len(s.Bytes())
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
