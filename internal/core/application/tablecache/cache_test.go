package tablecache_test

import (
	"testing"
	"time"

	"restopos/internal/adapters/out/docstore/tablerepo"
	"restopos/internal/adapters/out/memdocstore"
	"restopos/internal/core/application/tablecache"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTable(t *testing.T, repo *tablerepo.Repository, name string) *table.Table {
	t.Helper()
	tbl, err := table.NewTable(kernel.NewDocID("table"), name, 4)
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), tbl))
	return tbl
}

func TestCache_GetAllServesSnapshotWithoutStore(t *testing.T) {
	store := memdocstore.New()
	repo := tablerepo.New(store)
	cache := tablecache.New(repo, time.Minute)

	seedTable(t, repo, "Terasz 1")

	first, err := cache.GetAll(t.Context())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A warm cache must not touch the store at all.
	store.SetOffline(true)
	second, err := cache.GetAll(t.Context())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestCache_SaveThroughCacheDropsSnapshot(t *testing.T) {
	store := memdocstore.New()
	repo := tablerepo.New(store)
	cache := tablecache.New(repo, time.Minute)

	seedTable(t, repo, "Terasz 1")
	_, err := cache.GetAll(t.Context())
	require.NoError(t, err)

	tbl, err := table.NewTable(kernel.NewDocID("table"), "Terasz 2", 2)
	require.NoError(t, err)
	require.NoError(t, cache.Save(t.Context(), tbl))

	fresh, err := cache.GetAll(t.Context())
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestCache_DeleteThroughCacheDropsSnapshot(t *testing.T) {
	store := memdocstore.New()
	repo := tablerepo.New(store)
	cache := tablecache.New(repo, time.Minute)

	tbl := seedTable(t, repo, "Terasz 1")
	_, err := cache.GetAll(t.Context())
	require.NoError(t, err)

	require.NoError(t, cache.Delete(t.Context(), tbl.ID(), tbl.Rev()))

	fresh, err := cache.GetAll(t.Context())
	require.NoError(t, err)
	assert.Empty(t, fresh)
}

func TestCache_InvalidateForcesReload(t *testing.T) {
	store := memdocstore.New()
	repo := tablerepo.New(store)
	cache := tablecache.New(repo, time.Minute)

	seedTable(t, repo, "Terasz 1")
	_, err := cache.GetAll(t.Context())
	require.NoError(t, err)

	// A write that bypasses the decorator is invisible until invalidation.
	seedTable(t, repo, "Terasz 2")

	stale, err := cache.GetAll(t.Context())
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	cache.Invalidate()
	fresh, err := cache.GetAll(t.Context())
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestCache_PointLookupPassesThrough(t *testing.T) {
	store := memdocstore.New()
	repo := tablerepo.New(store)
	cache := tablecache.New(repo, time.Minute)

	tbl := seedTable(t, repo, "Terasz 1")
	_, err := cache.GetAll(t.Context())
	require.NoError(t, err)

	got, err := cache.GetByID(t.Context(), tbl.ID())
	require.NoError(t, err)
	got.Occupy()
	require.NoError(t, cache.Save(t.Context(), got))

	// The fresh revision from the pass-through lets the save succeed.
	byStatus, err := cache.GetByStatus(t.Context(), table.Occupied)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)
}

func TestCache_RefreshPropagatesStoreErrors(t *testing.T) {
	store := memdocstore.New()
	repo := tablerepo.New(store)
	cache := tablecache.New(repo, time.Minute)

	store.SetOffline(true)
	_, err := cache.Refresh(t.Context())
	assert.ErrorIs(t, err, errs.ErrUnavailable)
}
