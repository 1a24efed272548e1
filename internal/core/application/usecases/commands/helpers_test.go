package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"restopos/internal/adapters/out/docstore/archiverepo"
	"restopos/internal/adapters/out/docstore/courierrepo"
	"restopos/internal/adapters/out/docstore/invoicerepo"
	"restopos/internal/adapters/out/docstore/orderrepo"
	"restopos/internal/adapters/out/docstore/tablerepo"
	"restopos/internal/adapters/out/memdocstore"
	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// env wires every repository over one in-memory store, the way the
// composition root does against the real one.
type env struct {
	store       *memdocstore.Store
	orderRepo   *orderrepo.Repository
	archiveRepo *archiverepo.Repository
	tableRepo   *tablerepo.Repository
	courierRepo *courierrepo.Repository
	invoiceRepo *invoicerepo.Repository
	logger      *slog.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memdocstore.New()
	return &env{
		store:       store,
		orderRepo:   orderrepo.New(store),
		archiveRepo: archiverepo.New(store),
		tableRepo:   tablerepo.New(store),
		courierRepo: courierrepo.New(store),
		invoiceRepo: invoicerepo.New(store),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (e *env) newTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewTable(kernel.NewDocID("table"), "Table", 4)
	require.NoError(t, err)
	require.NoError(t, e.tableRepo.Save(t.Context(), tbl))
	return tbl
}

func (e *env) newCart(t *testing.T, tableID kernel.DocID) *order.Order {
	t.Helper()
	item, err := order.NewItem("menu_margherita", "Margherita", 1, 2500, "")
	require.NoError(t, err)
	cart, err := order.NewOrder(kernel.NewDocID("order"), order.TypeTemporary,
		&tableID, []order.Item{item}, "")
	require.NoError(t, err)
	require.NoError(t, e.orderRepo.Save(t.Context(), cart))
	return cart
}

func (e *env) newDineInOrder(t *testing.T, tableID kernel.DocID) *order.Order {
	t.Helper()
	item, err := order.NewItem("menu_diavola", "Diavola", 2, 2800, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewDocID("order"), order.DineIn,
		&tableID, []order.Item{item}, "")
	require.NoError(t, err)
	require.NoError(t, e.orderRepo.Save(t.Context(), o))
	return o
}

func (e *env) newDeliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem("menu_calzone", "Calzone", 1, 3200, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewDocID("order"), order.Delivery,
		nil, []order.Item{item}, "")
	require.NoError(t, err)
	require.NoError(t, e.orderRepo.Save(t.Context(), o))
	return o
}

func (e *env) newCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewDocID("courier"), "Courier", "+36-30-000-0000")
	require.NoError(t, err)
	require.NoError(t, e.courierRepo.Save(t.Context(), c))
	return c
}

// conflictingOrderRepo fails a configured number of writes with a revision
// conflict before delegating, simulating a concurrent writer advancing the
// document between fetch and save.
type conflictingOrderRepo struct {
	ports.OrderRepository
	saveConflicts   int
	deleteConflicts int
}

func (r *conflictingOrderRepo) Save(ctx context.Context, o *order.Order) error {
	if r.saveConflicts > 0 {
		r.saveConflicts--
		return errs.NewConflictError("restaurant_orders", o.ID().String(), o.Rev())
	}
	return r.OrderRepository.Save(ctx, o)
}

func (r *conflictingOrderRepo) Delete(ctx context.Context, id kernel.DocID, rev string) error {
	if r.deleteConflicts > 0 {
		r.deleteConflicts--
		return errs.NewConflictError("restaurant_orders", id.String(), rev)
	}
	return r.OrderRepository.Delete(ctx, id, rev)
}
