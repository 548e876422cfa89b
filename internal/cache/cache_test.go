package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for absent key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get("k")
	if !found {
		t.Fatal("expected hit after Set")
	}
	if string(val) != "value" {
		t.Errorf("expected %q, got %q", "value", val)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after Delete")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected miss after Clear")
	}
}

func TestDiskCache_SetGet(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("annokit:v1:abc", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get("annokit:v1:abc")
	if !found {
		t.Fatal("expected hit after Set")
	}
	if string(val) != "payload" {
		t.Errorf("expected %q, got %q", "payload", val)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestDiskCache_KeySeparatorSafe(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("ns:v1:key", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".cache" {
			t.Errorf("unexpected cache file name %q", e.Name())
		}
	}
}

func TestLayeredCache_Promotion(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Simulate a fresh process: memory layer empty, disk layer warm.
	c.memory.Clear()
	val, found := c.Get("k")
	if !found {
		t.Fatal("expected disk hit after memory clear")
	}
	if string(val) != "v" {
		t.Errorf("expected %q, got %q", "v", val)
	}

	// The hit should have promoted the entry back into memory.
	if _, found := c.memory.Get("k"); !found {
		t.Error("expected entry promoted to memory layer")
	}
}

func TestFileKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.fasta")
	if err := os.WriteFile(path, []byte(">a\nMK\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	key1, ok := FileKey(path)
	if !ok {
		t.Fatal("expected key for existing file")
	}
	key2, ok := FileKey(path)
	if !ok || key1 != key2 {
		t.Errorf("expected stable key for unchanged file, got %q vs %q", key1, key2)
	}

	// Content change with a different size must produce a new key.
	if err := os.WriteFile(path, []byte(">a\nMKLLV\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	key3, ok := FileKey(path)
	if !ok {
		t.Fatal("expected key after rewrite")
	}
	if key3 == key1 {
		t.Error("expected key to change after file modification")
	}

	if _, ok := FileKey(filepath.Join(t.TempDir(), "absent")); ok {
		t.Error("expected no key for missing file")
	}
}
