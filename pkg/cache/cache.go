// Package cache memoises expensive byte-producing steps, chiefly the
// external SVG to PDF and PNG conversions.
//
// Two implementations are provided: [FileCache] stores JSON entries under a
// directory (one file per key, fanned out by hash prefix) and [NullCache]
// disables caching. Keys come from a [Keyer] so callers never build them by
// hand.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. ok is false on a miss, including an
	// expired or unreadable entry.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLConversion is how long converted artifacts stay valid. Conversions are
// keyed by content, so this only bounds disk growth.
const TTLConversion = 30 * 24 * time.Hour
