package ports

import (
	"context"
	"time"
)

// Cache is a string-keyed cache with TTL semantics, backed by Redis in
// production and an in-memory map when Redis is unavailable.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
