package cache

import (
	"context"
	"time"

	"github.com/matzehuels/socketgraph/pkg/observability"
)

// Fetch returns the cached value for key, or computes it with fn and stores
// the result. keyType labels the entry for cache hooks. Read and write
// failures degrade to recomputation; only fn's error is returned.
func Fetch(ctx context.Context, c Cache, key, keyType string, ttl time.Duration, fn func() ([]byte, error)) (data []byte, hit bool, err error) {
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, keyType)

	data, err = fn()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
	return data, false, nil
}
