package cachestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"vinylvault/internal/adapters/cachestore"
)

func testStoreRoundtrip(t *testing.T, store cachestore.Store) {
	t.Helper()
	ctx := t.Context()

	data, err := store.Load(ctx, "artist-types")
	require.NoError(t, err)
	require.Nil(t, data)

	require.NoError(t, store.Save(ctx, "artist-types", []byte(`{"1":{"type":"band"}}`)))

	data, err = store.Load(ctx, "artist-types")
	require.NoError(t, err)
	require.JSONEq(t, `{"1":{"type":"band"}}`, string(data))

	// Other namespaces are untouched
	data, err = store.Load(ctx, "master-years")
	require.NoError(t, err)
	require.Nil(t, data)

	// Save overwrites
	require.NoError(t, store.Save(ctx, "artist-types", []byte(`{}`)))
	data, err = store.Load(ctx, "artist-types")
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	testStoreRoundtrip(t, cachestore.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("roundtrip", func(t *testing.T) {
		t.Parallel()
		testStoreRoundtrip(t, cachestore.NewFileStore(t.TempDir()))
	})

	t.Run("persists across instances", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		store := cachestore.NewFileStore(dir)
		require.NoError(t, store.Save(t.Context(), "release-extras", []byte(`{"2":{}}`)))

		reopened := cachestore.NewFileStore(dir)
		data, err := reopened.Load(t.Context(), "release-extras")
		require.NoError(t, err)
		require.JSONEq(t, `{"2":{}}`, string(data))
	})

	t.Run("missing directory reads as empty", func(t *testing.T) {
		t.Parallel()
		store := cachestore.NewFileStore(filepath.Join(t.TempDir(), "does-not-exist"))
		data, err := store.Load(t.Context(), "artist-types")
		require.NoError(t, err)
		require.Nil(t, data)
	})

	t.Run("save creates the directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "cache")
		store := cachestore.NewFileStore(dir)
		require.NoError(t, store.Save(t.Context(), "master-years", []byte(`{}`)))

		_, err := os.Stat(filepath.Join(dir, "master-years.json"))
		require.NoError(t, err)
	})
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	t.Run("roundtrip", func(t *testing.T) {
		t.Parallel()
		store, err := cachestore.NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
		require.NoError(t, err)
		testStoreRoundtrip(t, store)
	})

	t.Run("persists across connections", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "cache.db")

		store, err := cachestore.NewSQLiteStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Save(t.Context(), "artist-types", []byte(`{"7":{"type":"person"}}`)))

		reopened, err := cachestore.NewSQLiteStore(path)
		require.NoError(t, err)
		data, err := reopened.Load(t.Context(), "artist-types")
		require.NoError(t, err)
		require.JSONEq(t, `{"7":{"type":"person"}}`, string(data))
	})
}
