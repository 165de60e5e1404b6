// Package cache provides short-lived storage for backend responses so
// repeated listing and report requests don't hit the analysis API every
// time.
package cache

import (
	"context"
	"time"
)

// Store is a TTL key-value store. Implementations must treat a missing
// or expired key as absent rather than an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
