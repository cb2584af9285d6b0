package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-entry TTL expiry.
// Implementations provide last-write-wins semantics; there is no
// eviction policy beyond expiry.
type Store interface {
	// Get returns the value for key and whether it was present and unexpired
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key for the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete removes key from the cache
	Delete(ctx context.Context, key string) error
	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}
