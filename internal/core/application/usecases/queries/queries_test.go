package queries_test

import (
	"io"
	"log/slog"
	"testing"

	"restopos/internal/adapters/out/docstore/customerrepo"
	"restopos/internal/adapters/out/docstore/orderrepo"
	"restopos/internal/adapters/out/docstore/tablerepo"
	"restopos/internal/adapters/out/memdocstore"
	"restopos/internal/core/application/usecases/queries"
	"restopos/internal/core/domain/model/customer"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func saveDineInOrder(t *testing.T, repo *orderrepo.Repository) *order.Order {
	t.Helper()
	item, err := order.NewItem("menu_margherita", "Margherita", 1, 2500, "")
	require.NoError(t, err)
	tableID := kernel.NewDocID("table")
	o, err := order.NewOrder(kernel.NewDocID("order"), order.DineIn, &tableID,
		[]order.Item{item}, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), o))
	return o
}

func TestGetActiveOrdersQueryHandler_ReturnsReadModels(t *testing.T) {
	store := memdocstore.New()
	repo := orderrepo.New(store)
	handler := queries.NewGetActiveOrdersQueryHandler(repo, queries.ListingPolicy{})

	o := saveDineInOrder(t, repo)

	got, err := handler.Handle(t.Context(), queries.NewGetActiveOrdersQuery())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, o.ID().String(), got[0].ID)
	assert.Equal(t, "new", got[0].Status)
	assert.Equal(t, 2500, got[0].Total)
	require.Len(t, got[0].Items, 1)
}

func TestGetActiveOrdersQueryHandler_EmptyOnUnavailable(t *testing.T) {
	store := memdocstore.New()
	repo := orderrepo.New(store)

	saveDineInOrder(t, repo)
	store.SetOffline(true)

	strict := queries.NewGetActiveOrdersQueryHandler(repo, queries.ListingPolicy{})
	_, err := strict.Handle(t.Context(), queries.NewGetActiveOrdersQuery())
	assert.ErrorIs(t, err, errs.ErrUnavailable)

	degraded := queries.NewGetActiveOrdersQueryHandler(repo, queries.ListingPolicy{
		EmptyOnUnavailable: true,
		Logger:             discardLogger(),
	})
	got, err := degraded.Handle(t.Context(), queries.NewGetActiveOrdersQuery())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetTablesQueryHandler_ReturnsReadModels(t *testing.T) {
	store := memdocstore.New()
	repo := tablerepo.New(store)
	handler := queries.NewGetTablesQueryHandler(repo, queries.ListingPolicy{})

	tbl, err := table.NewTable(kernel.NewDocID("table"), "Terasz 2", 6)
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), tbl))

	got, err := handler.Handle(t.Context(), queries.NewGetTablesQuery())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tbl.ID().String(), got[0].ID)
	assert.Equal(t, "free", got[0].Status)
	assert.Equal(t, 6, got[0].Seats)
}

func TestGetCustomerByPhoneQueryHandler_NotDegradedWhenUnavailable(t *testing.T) {
	store := memdocstore.New()
	repo := customerrepo.New(store)
	handler := queries.NewGetCustomerByPhoneQueryHandler(repo)

	c, err := customer.NewCustomer(kernel.NewDocID("customer"), "Szabó Júlia",
		"+36-20-555-1234", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), c))

	query, err := queries.NewGetCustomerByPhoneQuery("+36-20-555-1234")
	require.NoError(t, err)

	got, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, "Szabó Júlia", got.Name)

	// Point lookups surface the outage instead of degrading.
	store.SetOffline(true)
	_, err = handler.Handle(t.Context(), query)
	assert.ErrorIs(t, err, errs.ErrUnavailable)
}

func TestQueries_RejectUnconstructed(t *testing.T) {
	store := memdocstore.New()

	tablesHandler := queries.NewGetTablesQueryHandler(tablerepo.New(store), queries.ListingPolicy{})
	_, err := tablesHandler.Handle(t.Context(), queries.GetTablesQuery{})
	assert.ErrorIs(t, err, queries.ErrGetTablesQueryIsNotConstructed)

	ordersHandler := queries.NewGetActiveOrdersQueryHandler(orderrepo.New(store), queries.ListingPolicy{})
	_, err = ordersHandler.Handle(t.Context(), queries.GetActiveOrdersQuery{})
	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
