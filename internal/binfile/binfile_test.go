package binfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestOpenAndClose(t *testing.T) {
	t.Parallel()
	want := []byte{0x00, 0x00, 0x12, 0xAB, 0xFF, 0xFF, 0xFF, 0xFF}
	path := writeTemp(t, want)

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(f.Data, want) {
		t.Errorf("Data: got % x, want % x", f.Data, want)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if f.Data != nil {
		t.Error("Data not cleared after Close")
	}
	// Double close is harmless.
	if err := f.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, nil)

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	if len(f.Data) != 0 {
		t.Errorf("expected empty data, got %d bytes", len(f.Data))
	}
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := Open(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Error("expected error for missing file")
	}
}
