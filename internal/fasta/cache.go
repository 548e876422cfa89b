package fasta

import (
	"encoding/json"

	"github.com/mvillar/annokit/internal/cache"
)

// CachedLengths is Lengths backed by a cache keyed on the file's path,
// size, and mtime. Large proteomes are parsed once and reused across
// samples and runs; a nil cache or any cache miss falls back to a fresh
// parse. Cache failures are never fatal.
func CachedLengths(c cache.Cache, path string) *LengthIndex {
	if c == nil || path == "" {
		return Lengths(path)
	}
	key, ok := cache.FileKey(path)
	if !ok {
		return Lengths(path)
	}

	if data, hit := c.Get(key); hit {
		ix := NewLengthIndex()
		if err := json.Unmarshal(data, ix); err == nil {
			if ix.Len == nil {
				ix.Len = make(map[string]int)
			}
			return ix
		}
	}

	ix := Lengths(path)
	if data, err := json.Marshal(ix); err == nil {
		_ = c.Set(key, data, 0)
	}
	return ix
}
