// Package fallback holds the local fallback store: one Redis key per entity
// namespace, each holding a JSON-serialized ordered list. It is the secondary
// store behind every entity service and the only store in local-only mode.
package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

// Namespace keys, one per entity collection.
const (
	KeyVehicles  = "vehicles"
	KeyCustomers = "customers"
	KeyRentals   = "rentals"
	KeyPayments  = "payments"
	KeyLocations = "pickup_locations"

	keySetupComplete = "setup_complete"
)

// Store wraps the Redis client backing the fallback namespaces.
type Store struct {
	client *redis.Client
}

// NewStore creates a new fallback store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// SetupComplete reports whether the one-time setup flag has been recorded.
func (s *Store) SetupComplete(ctx context.Context) bool {
	val, err := s.client.Get(ctx, keySetupComplete).Result()
	if err != nil {
		return false
	}
	return val == "1"
}

// MarkSetupComplete records the one-time setup flag.
func (s *Store) MarkSetupComplete(ctx context.Context) error {
	return s.client.Set(ctx, keySetupComplete, "1", 0).Err()
}

// Collection is a typed view over one namespace. The id function extracts
// the identity used by Upsert and Remove.
type Collection[T any] struct {
	store *Store
	key   string
	id    func(T) string
}

// NewCollection creates a typed view over the given namespace key.
func NewCollection[T any](store *Store, key string, id func(T) string) *Collection[T] {
	return &Collection[T]{store: store, key: key, id: id}
}

// GetAll returns the stored list. A missing key or a corrupt payload both
// yield an empty list; only transport failures are reported.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	data, err := c.store.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt payload reads as an empty collection.
		return nil, nil
	}
	return items, nil
}

// ReplaceAll overwrites the whole namespace with items (full replace, not merge).
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.client.Set(ctx, c.key, data, 0).Err()
}

// Upsert inserts item or replaces the stored entry with the same ID.
func (c *Collection[T]) Upsert(ctx context.Context, item T) error {
	items, err := c.GetAll(ctx)
	if err != nil {
		return err
	}

	id := c.id(item)
	replaced := false
	for i := range items {
		if c.id(items[i]) == id {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return c.ReplaceAll(ctx, items)
}

// Remove deletes the entry with the given ID. Removing an absent ID is a no-op.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	items, err := c.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	return c.ReplaceAll(ctx, kept)
}

// NewLocalID mints an ID for records created while offline: unix millis plus
// a random suffix. Uniqueness only needs to hold within one client.
func NewLocalID() string {
	return fmt.Sprintf("%d-%06x", time.Now().UnixMilli(), rand.Intn(1<<24))
}
