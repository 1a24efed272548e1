package courierrepo_test

import (
	"testing"

	"restopos/internal/adapters/out/docstore/courierrepo"
	"restopos/internal/adapters/out/memdocstore"
	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourier(t *testing.T, name string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewDocID("courier"), name, "+36-30-111-2222")
	require.NoError(t, err)
	return c
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	ctx := t.Context()
	repo := courierrepo.New(memdocstore.New())

	c := newCourier(t, "Kovács Péter")
	require.NoError(t, c.UpdateContact("+36-30-111-2222", "peter@example.com", "scooter"))
	require.NoError(t, repo.Save(ctx, c))
	assert.NotEmpty(t, c.Rev())

	got, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, c.Name(), got.Name())
	assert.Equal(t, "peter@example.com", got.Email())
	assert.Equal(t, "scooter", got.Vehicle())
	assert.Equal(t, courier.Available, got.Status())
}

func TestRepository_GetByStatus(t *testing.T) {
	ctx := t.Context()
	repo := courierrepo.New(memdocstore.New())

	available := newCourier(t, "Free Rider")
	require.NoError(t, repo.Save(ctx, available))

	busy := newCourier(t, "On Delivery")
	require.NoError(t, busy.MarkBusy())
	require.NoError(t, repo.Save(ctx, busy))

	offline := newCourier(t, "Off Shift")
	offline.MarkOffline()
	require.NoError(t, repo.Save(ctx, offline))

	got, err := repo.GetByStatus(ctx, courier.Busy)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].ID().IsEqual(busy.ID()))

	got, err = repo.GetByStatus(ctx, courier.Available)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].ID().IsEqual(available.ID()))
}

func TestRepository_Save_StaleRevisionConflicts(t *testing.T) {
	ctx := t.Context()
	repo := courierrepo.New(memdocstore.New())

	c := newCourier(t, "Nagy Anna")
	require.NoError(t, repo.Save(ctx, c))

	stale, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)

	require.NoError(t, c.MarkBusy())
	require.NoError(t, repo.Save(ctx, c))

	stale.MarkOffline()
	assert.ErrorIs(t, repo.Save(ctx, stale), errs.ErrConflict)
}

func TestRepository_Delete(t *testing.T) {
	ctx := t.Context()
	repo := courierrepo.New(memdocstore.New())

	c := newCourier(t, "Short Timer")
	require.NoError(t, repo.Save(ctx, c))

	require.NoError(t, repo.Delete(ctx, c.ID(), c.Rev()))

	_, err := repo.GetByID(ctx, c.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
