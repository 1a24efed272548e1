package customerrepo_test

import (
	"testing"
	"time"

	"restopos/internal/adapters/out/docstore/customerrepo"
	"restopos/internal/adapters/out/memdocstore"
	"restopos/internal/core/domain/model/customer"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, name, phone string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewDocID("customer"), name, phone, "Budapest, Fő utca 1.")
	require.NoError(t, err)
	return c
}

func TestRepository_SaveAndGetByPhone(t *testing.T) {
	ctx := t.Context()
	repo := customerrepo.New(memdocstore.New())

	c := newCustomer(t, "Szabó Júlia", "+36-20-555-1234")
	c.RecordOrder(time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, c))
	assert.NotEmpty(t, c.Rev)

	got, err := repo.GetByPhone(ctx, "+36-20-555-1234")
	require.NoError(t, err)
	assert.True(t, got.ID.IsEqual(c.ID))
	assert.Equal(t, "Szabó Júlia", got.Name)
	require.NotNil(t, got.LastOrderDate)

	_, err = repo.GetByPhone(ctx, "+36-20-000-0000")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_Save_RejectsDuplicatePhone(t *testing.T) {
	ctx := t.Context()
	repo := customerrepo.New(memdocstore.New())

	first := newCustomer(t, "First Owner", "+36-20-555-1234")
	require.NoError(t, repo.Save(ctx, first))

	second := newCustomer(t, "Second Owner", "+36-20-555-1234")
	err := repo.Save(ctx, second)
	assert.ErrorIs(t, err, errs.ErrValidationFailed)
	assert.Empty(t, second.Rev)
}

func TestRepository_Save_AllowsUpdatingTheOwner(t *testing.T) {
	ctx := t.Context()
	repo := customerrepo.New(memdocstore.New())

	c := newCustomer(t, "Sole Owner", "+36-20-555-1234")
	require.NoError(t, repo.Save(ctx, c))

	c.Address = "Budapest, Új utca 5."
	require.NoError(t, repo.Save(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budapest, Új utca 5.", got.Address)
}

func TestRepository_GetAll(t *testing.T) {
	ctx := t.Context()
	repo := customerrepo.New(memdocstore.New())

	require.NoError(t, repo.Save(ctx, newCustomer(t, "A", "+36-20-1")))
	require.NoError(t, repo.Save(ctx, newCustomer(t, "B", "+36-20-2")))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRepository_Delete(t *testing.T) {
	ctx := t.Context()
	repo := customerrepo.New(memdocstore.New())

	c := newCustomer(t, "Leaving", "+36-20-9")
	require.NoError(t, repo.Save(ctx, c))

	require.NoError(t, repo.Delete(ctx, c.ID, c.Rev))

	_, err := repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
