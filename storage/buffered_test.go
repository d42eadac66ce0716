package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBufferedBackend_Capacity(t *testing.T) {
	b, err := NewBufferedBackend(1000, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Capacity(); got != 1000 {
		t.Errorf("Capacity() = %d, want 1000", got)
	}

	b, err = NewBufferedBackend(1<<20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Capacity(); got != DefaultBufferSize {
		t.Errorf("Capacity() = %d, want %d", got, DefaultBufferSize)
	}
}

func TestBufferedBackend_InvalidSize(t *testing.T) {
	if _, err := NewBufferedBackend(0, 0); err == nil {
		t.Error("expected an error for a zero segment size")
	}
}

func TestBufferedSegment_CommitAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.0.log")
	b, _ := NewBufferedBackend(100, 16)

	seg, err := b.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	buf, start := seg.Arena()
	if start != 0 || len(buf) != 16 {
		t.Fatalf("Arena() = (%d bytes, %d), want (16, 0)", len(buf), start)
	}
	copy(buf, "hello\n")
	if err := seg.Commit(6); err != nil {
		t.Fatal(err)
	}
	if err := seg.Write([]byte("direct\n")); err != nil {
		t.Fatal(err)
	}
	if seg.Size() != 13 {
		t.Errorf("Size() = %d, want 13", seg.Size())
	}
	if err := seg.Close(); err != nil {
		t.Fatal(err)
	}
	if err := seg.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "hello\ndirect\n" {
		t.Errorf("file = %q", data)
	}
}

func TestBufferedSegment_ArenaBoundedByBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.0.log")
	if err := os.WriteFile(path, make([]byte, 90), 0644); err != nil {
		t.Fatal(err)
	}
	b, _ := NewBufferedBackend(100, 64)

	seg, err := b.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer seg.Close()

	if seg.Size() != 90 {
		t.Errorf("Size() = %d, want 90", seg.Size())
	}
	if buf, _ := seg.Arena(); len(buf) != 10 {
		t.Errorf("arena = %d bytes, want 10", len(buf))
	}
}

func TestBufferedSegment_OverBudgetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.0.log")
	if err := os.WriteFile(path, make([]byte, 150), 0644); err != nil {
		t.Fatal(err)
	}
	b, _ := NewBufferedBackend(100, 64)

	seg, err := b.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer seg.Close()

	if buf, _ := seg.Arena(); len(buf) != 0 {
		t.Errorf("arena = %d bytes, want 0", len(buf))
	}
}
