// Package kvstore defines the string-keyed storage port the cache and
// history layers persist through. Backends hold opaque JSON text; they never
// interpret values.
package kvstore

import (
	"context"

	"lookupdesk/pkg/platform/sentinel"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = sentinel.ErrNotFound

// Store is a persistent string key-value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// HealthChecker is implemented by backends that can report reachability.
type HealthChecker interface {
	Health(ctx context.Context) error
}
