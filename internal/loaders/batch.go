package loaders

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
)

func newLoader[K comparable, V any](
	wait time.Duration,
	name string,
	observe func(string, int),
	fetch func(ctx context.Context, keys []K) ([]*dataloader.Result[V], error),
) *dataloader.Loader[K, V] {
	batch := func(ctx context.Context, keys []K) []*dataloader.Result[V] {
		observe(name, len(keys))
		results, err := fetch(ctx, keys)
		if err != nil {
			return failAll[V](len(keys), err)
		}
		return results
	}
	return dataloader.NewBatchedLoader[K, V](batch, dataloader.WithWait[K, V](wait))
}

func failAll[V any](n int, err error) []*dataloader.Result[V] {
	out := make([]*dataloader.Result[V], n)
	for i := range out {
		out[i] = &dataloader.Result[V]{Error: err}
	}
	return out
}

// indexOne returns one result per key, nil data for keys with no row.
func indexOne[K comparable, V any](keys []K, rows []V, key func(V) K) []*dataloader.Result[*V] {
	byKey := make(map[K]*V, len(rows))
	for i := range rows {
		byKey[key(rows[i])] = &rows[i]
	}
	out := make([]*dataloader.Result[*V], len(keys))
	for i, k := range keys {
		out[i] = &dataloader.Result[*V]{Data: byKey[k]}
	}
	return out
}

// groupBy returns one non-nil slice per key, preserving row order.
func groupBy[K comparable, V any](keys []K, rows []V, key func(V) K) []*dataloader.Result[[]V] {
	byKey := make(map[K][]V, len(keys))
	for _, row := range rows {
		k := key(row)
		byKey[k] = append(byKey[k], row)
	}
	return fromMap(keys, byKey)
}

func fromMap[K comparable, V any](keys []K, byKey map[K][]V) []*dataloader.Result[[]V] {
	out := make([]*dataloader.Result[[]V], len(keys))
	for i, k := range keys {
		rows := byKey[k]
		if rows == nil {
			rows = []V{}
		}
		out[i] = &dataloader.Result[[]V]{Data: rows}
	}
	return out
}
