// Package cache provides the result cache injected into the report service.
// The pipeline itself never touches it; caching stays an explicit
// collaborator at the service boundary.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is not found in cache
var ErrCacheMiss = errors.New("cache miss")

// Cache interface for caching operations
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Close closes the cache connection
	Close() error
}

// KeyPrefixReport is the prefix for computed aggregate reports, keyed by
// source identifier.
const KeyPrefixReport = "cache:report:"

// TTLReport is the default lifetime of a computed report. Each run
// recomputes from the current source state, so staleness is bounded by this
// window only.
const TTLReport = 5 * time.Minute

// ReportKey builds the cache key for a source's aggregate report.
func ReportKey(source string) string {
	return KeyPrefixReport + source
}
