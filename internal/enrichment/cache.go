package enrichment

import (
	"context"
	"encoding/json"
	"sync"

	"vinylvault/internal/adapters/cachestore"
	"vinylvault/internal/logging"
	"vinylvault/internal/reporting"
)

// Cache is a persistent id -> value cache for one namespace. It loads
// its blob from the store on first use and writes back after every
// update. A corrupt or unreadable blob starts the cache empty instead
// of failing.
type Cache[V any] struct {
	store     cachestore.Store
	namespace string

	mu      sync.Mutex
	loaded  bool
	entries map[int64]V
}

func NewCache[V any](store cachestore.Store, namespace string) *Cache[V] {
	return &Cache[V]{
		store:     store,
		namespace: namespace,
	}
}

// ensureLoaded must be called with mu held.
func (c *Cache[V]) ensureLoaded(ctx context.Context) {
	if c.loaded {
		return
	}
	c.loaded = true
	c.entries = make(map[int64]V)

	data, err := c.store.Load(ctx, c.namespace)
	if err != nil {
		logging.FromContext(ctx).Error("failed to load cache, starting empty", "namespace", c.namespace, "error", err.Error())
		reporting.Report(ctx, err)
		return
	}
	if len(data) == 0 {
		return
	}

	entries := make(map[int64]V)
	if err := json.Unmarshal(data, &entries); err != nil {
		logging.FromContext(ctx).Warn("discarding corrupt cache", "namespace", c.namespace, "error", err.Error())
		return
	}
	c.entries = entries
}

// persist must be called with mu held. Failing to save is not fatal;
// the cache keeps working in memory.
func (c *Cache[V]) persist(ctx context.Context) {
	data, err := json.Marshal(c.entries)
	if err != nil {
		logging.FromContext(ctx).Error("failed to marshal cache", "namespace", c.namespace, "error", err.Error())
		reporting.Report(ctx, err)
		return
	}
	if err := c.store.Save(ctx, c.namespace, data); err != nil {
		logging.FromContext(ctx).Error("failed to save cache", "namespace", c.namespace, "error", err.Error())
		reporting.Report(ctx, err)
	}
}

func (c *Cache[V]) Get(ctx context.Context, id int64) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	value, ok := c.entries[id]
	return value, ok
}

func (c *Cache[V]) Put(ctx context.Context, id int64, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	c.entries[id] = value
	c.persist(ctx)
}

func (c *Cache[V]) Snapshot(ctx context.Context) map[int64]V {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	snapshot := make(map[int64]V, len(c.entries))
	for id, value := range c.entries {
		snapshot[id] = value
	}
	return snapshot
}
