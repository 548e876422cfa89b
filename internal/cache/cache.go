// Package cache provides byte-value caching for parsed annotation inputs,
// keyed by file identity so a changed input never serves stale data.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// FileKey generates a cache key from a file path plus its current size
// and modification time, so edits to the file invalidate the entry. A
// stat failure yields ("", false).
func FileKey(path string) (string, bool) {
	st, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	raw := fmt.Sprintf("%s|%d|%d", path, st.Size(), st.ModTime().UnixNano())
	hash := sha256.Sum256([]byte(raw))
	return "annokit:v1:" + hex.EncodeToString(hash[:]), true
}
