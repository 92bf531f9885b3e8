package filestore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSStoreRoundTrip(t *testing.T) {
	store := NewOSStore()
	path := filepath.Join(t.TempDir(), "note.txt")

	if err := store.WriteText(path, "hello\nworld\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := store.ReadText(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "hello\nworld\n" {
		t.Errorf("expected round-trip text, got %q", got)
	}
}

func TestOSStoreReadMissing(t *testing.T) {
	store := NewOSStore()

	_, err := store.ReadText(filepath.Join(t.TempDir(), "missing.txt"))

	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestOSStoreOverwrite(t *testing.T) {
	store := NewOSStore()
	path := filepath.Join(t.TempDir(), "doc.txt")

	if err := store.WriteText(path, "first"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := store.WriteText(path, "second"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := store.ReadText(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
}
