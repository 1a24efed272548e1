package commands_test

import (
	"testing"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/invoice"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompleteHandler(e *env) commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(
		e.orderRepo, e.invoiceRepo, e.tableRepo, e.courierRepo, e.logger)
}

func TestCompleteOrderCommandHandler_WritesInvoiceAndReleasesTable(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := newCompleteHandler(e)

	tbl := e.newTable(t)
	tbl.Occupy()
	require.NoError(t, e.tableRepo.Save(ctx, tbl))

	o := e.newDineInOrder(t, tbl.ID())
	require.NoError(t, o.SetItemStatus(0, order.ItemReady))
	require.NoError(t, e.orderRepo.Save(ctx, o))

	cmd, err := commands.NewCompleteOrderCommand(o.ID(), "card")
	require.NoError(t, err)
	invoiceID, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	got, err := e.orderRepo.GetByID(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Completed, got.Status())
	assert.Equal(t, "card", got.PaymentMethod())

	inv, err := e.invoiceRepo.GetByID(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, o.ID().String(), inv.OrderID)
	assert.Equal(t, o.Total(), inv.Total)
	assert.Equal(t, invoice.DefaultTaxRatePercent, inv.TaxRatePercent)

	gotTable, err := e.tableRepo.GetByID(ctx, tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, table.Free, gotTable.Status())
}

func TestCompleteOrderCommandHandler_FreesCourier(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := newCompleteHandler(e)

	c := e.newCourier(t)
	o := e.newDeliveryOrder(t)
	require.NoError(t, o.AssignCourier(c.ID()))
	require.NoError(t, o.SetItemStatus(0, order.ItemReady))
	require.NoError(t, e.orderRepo.Save(ctx, o))
	require.NoError(t, c.MarkBusy())
	require.NoError(t, e.courierRepo.Save(ctx, c))

	cmd, err := commands.NewCompleteOrderCommand(o.ID(), "cash")
	require.NoError(t, err)
	_, err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	gotCourier, err := e.courierRepo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, courier.Available, gotCourier.Status())
}

func TestCompleteOrderCommandHandler_RejectsUnfinishedKitchen(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := newCompleteHandler(e)

	tbl := e.newTable(t)
	o := e.newDineInOrder(t, tbl.ID())

	cmd, err := commands.NewCompleteOrderCommand(o.ID(), "cash")
	require.NoError(t, err)
	_, err = handler.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	invoices, err := e.invoiceRepo.GetRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}
