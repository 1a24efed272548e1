package settingsrepo_test

import (
	"testing"

	"restopos/internal/adapters/out/docstore/settingsrepo"
	"restopos/internal/adapters/out/memdocstore"
	"restopos/internal/core/domain/model/settings"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Get_NotFoundBeforeSeeding(t *testing.T) {
	repo := settingsrepo.New(memdocstore.New())

	_, err := repo.Get(t.Context())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_SaveAndGet(t *testing.T) {
	ctx := t.Context()
	repo := settingsrepo.New(memdocstore.New())

	s := settings.Default()
	require.NoError(t, repo.Save(ctx, s))
	assert.NotEmpty(t, s.Rev)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Maestro", got.RestaurantName)
	assert.Equal(t, []string{"cash", "card"}, got.PaymentMethods)
	assert.Len(t, got.PizzaSizes, 4)
	assert.Len(t, got.ExtraToppings, 8)
	assert.Equal(t, "23:00", got.OpeningHours["friday"].Close)
}

func TestRepository_Save_UpdatesInPlace(t *testing.T) {
	ctx := t.Context()
	repo := settingsrepo.New(memdocstore.New())

	s := settings.Default()
	require.NoError(t, repo.Save(ctx, s))
	firstRev := s.Rev

	s.DeliveryFee = 700
	require.NoError(t, repo.Save(ctx, s))
	assert.NotEqual(t, firstRev, s.Rev)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 700, got.DeliveryFee)
}

func TestRepository_Save_StaleRevisionConflicts(t *testing.T) {
	ctx := t.Context()
	repo := settingsrepo.New(memdocstore.New())

	s := settings.Default()
	require.NoError(t, repo.Save(ctx, s))

	stale := settings.Default()
	stale.Rev = ""
	assert.ErrorIs(t, repo.Save(ctx, stale), errs.ErrConflict)
}
