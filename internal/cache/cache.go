// Package cache provides byte-level caching with memory, disk and
// layered backends. The pipeline stores serialized analysis results
// keyed by a digest of the extracted text, so re-analyzing an unchanged
// document is a cache hit rather than a full inference pass.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from the extracted text of a document
func CacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "greenstamp:v1:" + hex.EncodeToString(hash[:])
}
