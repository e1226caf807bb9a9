// Package ports defines the storage contracts between the application layer
// and infrastructure adapters.
package ports

import "context"

// KeyValueStore is the raw storage port. Values are JSON documents stored
// under namespaced string keys.
type KeyValueStore interface {
	// Get returns the value and true, or "" and false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes a single key.
	Set(ctx context.Context, key, value string) error

	// SetMany writes all entries atomically: either every key is updated or none.
	SetMany(ctx context.Context, entries map[string]string) error
}
