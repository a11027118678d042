package fallback

import "context"

// List is the namespace contract the entity services depend on.
// This interface allows for testing with mock implementations.
type List[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	ReplaceAll(ctx context.Context, items []T) error
	Upsert(ctx context.Context, item T) error
	Remove(ctx context.Context, id string) error
}

// Ensure the concrete type implements the interface.
var _ List[struct{}] = (*Collection[struct{}])(nil)
