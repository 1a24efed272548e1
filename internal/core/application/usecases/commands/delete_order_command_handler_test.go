package commands_test

import (
	"testing"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_ReleasesDependents(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := commands.NewDeleteOrderCommandHandler(
		e.orderRepo, e.tableRepo, e.courierRepo, e.logger)

	tbl := e.newTable(t)
	tbl.Occupy()
	require.NoError(t, e.tableRepo.Save(ctx, tbl))
	o := e.newDineInOrder(t, tbl.ID())

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	_, err = e.orderRepo.GetByID(ctx, o.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	gotTable, err := e.tableRepo.GetByID(ctx, tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, table.Free, gotTable.Status())
}

func TestDeleteOrderCommandHandler_FreesCourier(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := commands.NewDeleteOrderCommandHandler(
		e.orderRepo, e.tableRepo, e.courierRepo, e.logger)

	c := e.newCourier(t)
	o := e.newDeliveryOrder(t)
	require.NoError(t, o.AssignCourier(c.ID()))
	require.NoError(t, e.orderRepo.Save(ctx, o))
	require.NoError(t, c.MarkBusy())
	require.NoError(t, e.courierRepo.Save(ctx, c))

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	gotCourier, err := e.courierRepo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, courier.Available, gotCourier.Status())
}

func TestDeleteOrderCommandHandler_RetriesOnceOnConflict(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	flaky := &conflictingOrderRepo{OrderRepository: e.orderRepo, deleteConflicts: 1}
	handler := commands.NewDeleteOrderCommandHandler(
		flaky, e.tableRepo, e.courierRepo, e.logger)

	tbl := e.newTable(t)
	o := e.newDineInOrder(t, tbl.ID())

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	_, err = e.orderRepo.GetByID(ctx, o.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_SurfacesRepeatedConflict(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	flaky := &conflictingOrderRepo{OrderRepository: e.orderRepo, deleteConflicts: 2}
	handler := commands.NewDeleteOrderCommandHandler(
		flaky, e.tableRepo, e.courierRepo, e.logger)

	tbl := e.newTable(t)
	o := e.newDineInOrder(t, tbl.ID())

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)
	assert.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrConflict)

	_, err = e.orderRepo.GetByID(ctx, o.ID())
	require.NoError(t, err)
}
