package enrichment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinylvault/internal/adapters/cachestore"
	"vinylvault/internal/domain"
)

type failingStore struct{}

func (failingStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	return nil, assert.AnError
}

func (failingStore) Save(ctx context.Context, namespace string, data []byte) error {
	return assert.AnError
}

func TestCacheRoundtrip(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	store := cachestore.NewMemoryStore()

	cache := NewCache[domain.MasterYear](store, "master-years")

	_, ok := cache.Get(ctx, 23934)
	require.False(t, ok)

	cache.Put(ctx, 23934, domain.KnownMasterYear(1989))

	year, ok := cache.Get(ctx, 23934)
	require.True(t, ok)
	require.Equal(t, domain.KnownMasterYear(1989), year)

	snapshot := cache.Snapshot(ctx)
	require.Equal(t, map[int64]domain.MasterYear{23934: domain.KnownMasterYear(1989)}, snapshot)
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	store := cachestore.NewMemoryStore()

	cache := NewCache[domain.ArtistType](store, "artist-types")
	cache.Put(ctx, 196248, domain.ArtistType{Kind: domain.ArtistKindBand})
	cache.Put(ctx, 71681, domain.ArtistType{Kind: domain.ArtistKindPerson, Realname: "Philip David Charles Collins"})

	reloaded := NewCache[domain.ArtistType](store, "artist-types")
	artistType, ok := reloaded.Get(ctx, 71681)
	require.True(t, ok)
	require.Equal(t, domain.ArtistKindPerson, artistType.Kind)
	require.Equal(t, "Philip David Charles Collins", artistType.Realname)
}

func TestCacheNamespacesAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	store := cachestore.NewMemoryStore()

	years := NewCache[domain.MasterYear](store, "master-years")
	years.Put(ctx, 1, domain.KnownMasterYear(1981))

	extras := NewCache[domain.ReleaseExtras](store, "release-extras")
	_, ok := extras.Get(ctx, 1)
	require.False(t, ok)
}

func TestCacheStartsEmptyOnCorruptBlob(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	store := cachestore.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "master-years", []byte("not json{")))

	cache := NewCache[domain.MasterYear](store, "master-years")

	_, ok := cache.Get(ctx, 23934)
	require.False(t, ok)

	// The cache recovers by overwriting the corrupt blob
	cache.Put(ctx, 23934, domain.KnownMasterYear(1989))

	reloaded := NewCache[domain.MasterYear](store, "master-years")
	year, ok := reloaded.Get(ctx, 23934)
	require.True(t, ok)
	require.Equal(t, domain.KnownMasterYear(1989), year)
}

func TestCacheWorksInMemoryWhenStoreFails(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	cache := NewCache[domain.MasterYear](failingStore{}, "master-years")

	cache.Put(ctx, 23934, domain.KnownMasterYear(1989))

	year, ok := cache.Get(ctx, 23934)
	require.True(t, ok)
	require.Equal(t, domain.KnownMasterYear(1989), year)
}
