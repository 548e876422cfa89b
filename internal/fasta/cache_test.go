package fasta

import (
	"testing"
	"time"

	"github.com/mvillar/annokit/internal/cache"
)

func TestCachedLengths_PopulatesAndHits(t *testing.T) {
	path := writeFile(t, "prot.faa", ">p1\nMKVL\n>p2\nAC\n")
	c := cache.NewMemoryCache(time.Minute, time.Minute)

	first := CachedLengths(c, path)
	if n, _ := first.Get("p1"); n != 4 {
		t.Fatalf("expected length 4, got %d", n)
	}

	key, ok := cache.FileKey(path)
	if !ok {
		t.Fatal("expected a cache key for an existing file")
	}
	if _, hit := c.Get(key); !hit {
		t.Error("expected the length map to be cached after first parse")
	}

	second := CachedLengths(c, path)
	if n, _ := second.Get("p2"); n != 2 {
		t.Errorf("cached result wrong: p2=%d", n)
	}
	if len(second.IDs) != 2 || second.IDs[0] != "p1" {
		t.Errorf("cached result lost file order: %v", second.IDs)
	}
}

func TestCachedLengths_NilCache(t *testing.T) {
	path := writeFile(t, "prot.faa", ">p1\nMKVL\n")
	ix := CachedLengths(nil, path)
	if n, _ := ix.Get("p1"); n != 4 {
		t.Errorf("nil cache should fall back to a plain parse, got %d", n)
	}
}

func TestCachedLengths_MissingFile(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	ix := CachedLengths(c, "/does/not/exist.faa")
	if len(ix.Len) != 0 {
		t.Errorf("expected empty index for missing file")
	}
}
