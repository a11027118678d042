package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/raphaestudos2/locadoradestino/internal/fallback"
)

// Source identifies which store served an operation. The distinction never
// crosses the service boundary; it exists for diagnostics and tests.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
	SourceSeed     Source = "seed"
)

// Readiness reports whether the remote store is configured and currently
// reachable. The postgres probe retries a bounded number of pings before
// answering false.
type Readiness interface {
	Ready(ctx context.Context) bool
}

// result pairs a value with the store that served it.
type result[T any] struct {
	value  T
	source Source
}

// readAll is the shared read path of the resilient protocol: remote when
// ready, mirrored into the fallback namespace on success, degraded to the
// fallback on any failure. Reads never fail past this point.
func readAll[T any](ctx context.Context, entity string, ready bool, remote func(context.Context) ([]T, error), local fallback.List[T]) result[[]T] {
	if ready {
		items, err := remote(ctx)
		if err == nil {
			mirrorAll(ctx, entity, local, items)
			return result[[]T]{value: items, source: SourceRemote}
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", entity, "error", err)
	}

	items, err := local.GetAll(ctx)
	if err != nil {
		zap.S().Warnw("fallback read failed, serving empty collection", "entity", entity, "error", err)
		items = nil
	}
	return result[[]T]{value: items, source: SourceFallback}
}

// mirrorAll overwrites the fallback namespace with the fresh remote result
// set, keeping the fallback representative. Mirror failures are logged only.
func mirrorAll[T any](ctx context.Context, entity string, local fallback.List[T], items []T) {
	if err := local.ReplaceAll(ctx, items); err != nil {
		zap.S().Warnw("fallback mirror failed", "entity", entity, "error", err)
	}
}

// mirrorUpsert applies a remote create/update to the fallback namespace.
func mirrorUpsert[T any](ctx context.Context, entity string, local fallback.List[T], item T) {
	if err := local.Upsert(ctx, item); err != nil {
		zap.S().Warnw("fallback mirror failed", "entity", entity, "error", err)
	}
}

// mirrorRemove applies a remote delete to the fallback namespace.
func mirrorRemove[T any](ctx context.Context, entity string, local fallback.List[T], id string) {
	if err := local.Remove(ctx, id); err != nil {
		zap.S().Warnw("fallback mirror failed", "entity", entity, "error", err)
	}
}

// findLocal scans the fallback namespace for the first match.
func findLocal[T any](ctx context.Context, local fallback.List[T], match func(T) bool) (T, bool, error) {
	var zero T
	items, err := local.GetAll(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if match(item) {
			return item, true, nil
		}
	}
	return zero, false, nil
}
