package orderrepo_test

import (
	"testing"

	"restopos/internal/adapters/out/docstore/orderrepo"
	"restopos/internal/adapters/out/memdocstore"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string) order.Item {
	t.Helper()
	item, err := order.NewItem("menu_"+name, name, 1, 2500, "")
	require.NoError(t, err)
	return item
}

func newDineInOrder(t *testing.T, tableID kernel.DocID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewDocID("order"),
		order.DineIn,
		&tableID,
		[]order.Item{mustItem(t, "Margherita")},
		"",
	)
	require.NoError(t, err)
	return o
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.New(memdocstore.New())

	tableID := kernel.NewDocID("table")
	o := newDineInOrder(t, tableID)
	before := o.UpdatedAt()

	require.NoError(t, repo.Save(ctx, o))
	assert.NotEmpty(t, o.Rev())
	assert.False(t, o.UpdatedAt().Before(before))

	got, err := repo.GetByID(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, got.IsEqual(o))
	assert.Equal(t, order.DineIn, got.Type())
	assert.Equal(t, order.New, got.Status())
	require.NotNil(t, got.TableID())
	assert.True(t, got.TableID().IsEqual(tableID))
	require.Len(t, got.Items(), 1)
	assert.Equal(t, 2500, got.Total())
}

func TestRepository_GetActive_SkipsClosedAndTemporary(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.New(memdocstore.New())

	open := newDineInOrder(t, kernel.NewDocID("table"))
	require.NoError(t, repo.Save(ctx, open))

	completed := newDineInOrder(t, kernel.NewDocID("table"))
	require.NoError(t, completed.SetItemStatus(0, order.ItemReady))
	require.NoError(t, completed.Complete("cash"))
	require.NoError(t, repo.Save(ctx, completed))

	tableID := kernel.NewDocID("table")
	cart, err := order.NewOrder(kernel.NewDocID("order"), order.TypeTemporary,
		&tableID, []order.Item{mustItem(t, "Diavola")}, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, cart))

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.True(t, active[0].IsEqual(open))
}

func TestRepository_GetByType(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.New(memdocstore.New())

	dineIn := newDineInOrder(t, kernel.NewDocID("table"))
	require.NoError(t, repo.Save(ctx, dineIn))

	takeaway, err := order.NewOrder(kernel.NewDocID("order"), order.Takeaway,
		nil, []order.Item{mustItem(t, "Calzone")}, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, takeaway))

	got, err := repo.GetByType(ctx, order.Takeaway)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsEqual(takeaway))
}

func TestRepository_GetActiveByTable(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.New(memdocstore.New())

	tableID := kernel.NewDocID("table")
	o := newDineInOrder(t, tableID)
	require.NoError(t, repo.Save(ctx, o))

	got, err := repo.GetActiveByTable(ctx, tableID)
	require.NoError(t, err)
	assert.True(t, got.IsEqual(o))

	_, err = repo.GetActiveByTable(ctx, kernel.NewDocID("table"))
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_GetTemporaryByTable(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.New(memdocstore.New())

	tableID := kernel.NewDocID("table")
	cart, err := order.NewOrder(kernel.NewDocID("order"), order.TypeTemporary,
		&tableID, []order.Item{mustItem(t, "Quattro Formaggi")}, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, cart))

	// A confirmed order on the same table must not shadow the cart lookup.
	confirmed := newDineInOrder(t, tableID)
	require.NoError(t, repo.Save(ctx, confirmed))

	got, err := repo.GetTemporaryByTable(ctx, tableID)
	require.NoError(t, err)
	assert.True(t, got.IsEqual(cart))
	assert.Equal(t, order.Temporary, got.Status())

	_, err = repo.GetTemporaryByTable(ctx, kernel.NewDocID("table"))
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_Save_RoundTripsRestoreProvenance(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.New(memdocstore.New())

	o := newDineInOrder(t, kernel.NewDocID("table"))
	archived, err := order.NewArchivedOrder(o, o.UpdatedAt())
	require.NoError(t, err)
	restored, err := archived.ToRestored(o.UpdatedAt())
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, restored))

	got, err := repo.GetByID(ctx, restored.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Active, got.Status())
	assert.Equal(t, archived.ID().String(), got.RestoredFrom())
	require.NotNil(t, got.RestoredAt())
}

func TestRepository_Save_StaleRevisionConflicts(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.New(memdocstore.New())

	o := newDineInOrder(t, kernel.NewDocID("table"))
	require.NoError(t, repo.Save(ctx, o))

	stale, err := repo.GetByID(ctx, o.ID())
	require.NoError(t, err)

	require.NoError(t, o.SetItemStatus(0, order.ItemInProgress))
	require.NoError(t, repo.Save(ctx, o))

	require.NoError(t, stale.SetItemStatus(0, order.ItemReady))
	assert.ErrorIs(t, repo.Save(ctx, stale), errs.ErrConflict)
}
