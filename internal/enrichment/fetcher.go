package enrichment

import (
	"context"
	"maps"
	"sync"

	"vinylvault/internal/logging"
	"vinylvault/internal/ratelimiting"
)

type LookupFunc[V any] func(ctx context.Context, id int64) (V, error)

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Fetcher resolves ids to values in the background, one paced upstream
// lookup at a time, and records every result in its persistent cache.
//
// Request is cheap to call on every page render: a request for the same
// set of ids is a no-op, and a request for a different set cancels the
// run in flight and starts over. Ids already in the cache are never
// looked up again, even across restarts.
type Fetcher[V any] struct {
	name     string
	cache    *Cache[V]
	lookup   LookupFunc[V]
	fallback V
	pacer    ratelimiting.Pacer

	mu        sync.Mutex
	requested map[int64]struct{}
	current   *run
}

func NewFetcher[V any](name string, cache *Cache[V], lookup LookupFunc[V], fallback V, pacer ratelimiting.Pacer) *Fetcher[V] {
	return &Fetcher[V]{
		name:     name,
		cache:    cache,
		lookup:   lookup,
		fallback: fallback,
		pacer:    pacer,
	}
}

// Request asks the fetcher to resolve ids, in the given order. Ids that
// are zero or negative are ignored, and duplicates keep their first
// position.
func (f *Fetcher[V]) Request(ctx context.Context, ids []int64) {
	ordered := make([]int64, 0, len(ids))
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, seen := set[id]; seen {
			continue
		}
		set[id] = struct{}{}
		ordered = append(ordered, id)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.requested != nil && maps.Equal(set, f.requested) {
		return
	}
	f.requested = set

	if f.current != nil {
		f.current.cancel()
	}

	// The run outlives the request that triggered it
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r := &run{cancel: cancel, done: make(chan struct{})}
	f.current = r

	go func() {
		defer close(r.done)
		defer cancel()

		f.resolve(runCtx, ordered)

		f.mu.Lock()
		if f.current == r {
			f.current = nil
		}
		f.mu.Unlock()
	}()
}

func (f *Fetcher[V]) resolve(ctx context.Context, ids []int64) {
	logger := logging.FromContext(ctx).With("fetcher", f.name)

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		if _, ok := f.cache.Get(ctx, id); ok {
			continue
		}

		if err := f.pacer.Wait(ctx); err != nil {
			return
		}

		value, err := f.lookup(ctx, id)
		if ctx.Err() != nil {
			// A cancelled run must not write anything
			return
		}
		if err != nil {
			logger.WarnContext(ctx, "lookup failed, caching fallback", "id", id, "error", err.Error())
			f.cache.Put(ctx, id, f.fallback)
			continue
		}

		f.cache.Put(ctx, id, value)
	}
}

// Resolve returns the value for a single id, looking it up immediately
// when it isn't cached yet. Unlike the background runs, a failed lookup
// returns the error instead of caching the fallback.
func (f *Fetcher[V]) Resolve(ctx context.Context, id int64) (V, error) {
	if value, ok := f.cache.Get(ctx, id); ok {
		return value, nil
	}

	value, err := f.lookup(ctx, id)
	if err != nil {
		var empty V
		return empty, err
	}

	f.cache.Put(ctx, id, value)
	return value, nil
}

// Loading reports whether a run is in flight.
func (f *Fetcher[V]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current != nil
}

// Resolved returns everything the cache knows, including results from
// earlier runs and previous sessions.
func (f *Fetcher[V]) Resolved(ctx context.Context) map[int64]V {
	return f.cache.Snapshot(ctx)
}

// Stop cancels the run in flight, if any.
func (f *Fetcher[V]) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current != nil {
		f.current.cancel()
	}
}
