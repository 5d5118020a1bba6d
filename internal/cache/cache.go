package cache

import (
	"context"
	"time"
)

// Cache holds short-lived text blobs, keyed by query. Used to avoid
// re-running identical web searches within the TTL window.
type Cache interface {
	Get(ctx context.Context, key string) (val string, hit bool, err error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
}
