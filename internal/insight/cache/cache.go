// Package cache stores encoded dashboard views keyed by view name and query.
// Caching is optional; the loader clears every entry under KeyPrefix after a
// successful load so readers never see views computed from replaced data.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// KeyPrefix is shared by every view cache key.
const KeyPrefix = "insights:"

// Cache defines the interface for view caching. Get returns
// sentinel.ErrCacheMiss when the key is absent or expired.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	ClearPrefix(ctx context.Context, prefix string) error
}

// Key builds the cache key of a view for the given canonical query string.
func Key(view, query string) string {
	hash := sha256.Sum256([]byte(query))
	return KeyPrefix + "v1:" + view + ":" + hex.EncodeToString(hash[:8])
}
