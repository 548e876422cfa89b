package fasta

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLengths_FileOrderAndValues(t *testing.T) {
	path := writeFile(t, "test.fasta", ">b\nMKVL\nLT\n>a\nAC\n")
	ix := Lengths(path)

	if got := ix.IDs; len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("expected file order [b a], got %v", got)
	}
	if n, _ := ix.Get("b"); n != 6 {
		t.Errorf("expected length 6 for b, got %d", n)
	}
	if n, _ := ix.Get("a"); n != 2 {
		t.Errorf("expected length 2 for a, got %d", n)
	}
}

func TestLengths_ZeroLengthRecord(t *testing.T) {
	path := writeFile(t, "test.fasta", ">empty\n>full\nACDEF\n")
	ix := Lengths(path)

	if n, ok := ix.Get("empty"); !ok || n != 0 {
		t.Errorf("expected length 0 for empty record, got %d (present=%v)", n, ok)
	}
}

func TestLengths_MissingFile(t *testing.T) {
	ix := Lengths(filepath.Join(t.TempDir(), "nope.fasta"))
	if len(ix.Len) != 0 || len(ix.IDs) != 0 {
		t.Errorf("expected empty index for missing file, got %+v", ix)
	}
}

func TestLengths_EmptyPath(t *testing.T) {
	ix := Lengths("")
	if len(ix.Len) != 0 {
		t.Errorf("expected empty index for empty path")
	}
}

func TestLengthIndex_DuplicateID(t *testing.T) {
	ix := NewLengthIndex()
	ix.Add("x", 3)
	ix.Add("x", 7)
	if len(ix.IDs) != 1 {
		t.Errorf("duplicate identifier duplicated in order: %v", ix.IDs)
	}
	if n, _ := ix.Get("x"); n != 7 {
		t.Errorf("expected last length to win, got %d", n)
	}
}
