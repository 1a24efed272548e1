package commands_test

import (
	"testing"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_ConfirmsCartAndOccupiesTable(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := commands.NewConfirmOrderCommandHandler(e.orderRepo, e.tableRepo)

	tbl := e.newTable(t)
	cart := e.newCart(t, tbl.ID())

	cmd, err := commands.NewConfirmOrderCommand(cart.ID(), order.DineIn)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	got, err := e.orderRepo.GetByID(ctx, cart.ID())
	require.NoError(t, err)
	assert.Equal(t, order.New, got.Status())
	assert.Equal(t, order.DineIn, got.Type())

	gotTable, err := e.tableRepo.GetByID(ctx, tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, table.Occupied, gotTable.Status())
}

func TestConfirmOrderCommandHandler_SupersedesPriorCart(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := commands.NewConfirmOrderCommandHandler(e.orderRepo, e.tableRepo)

	tbl := e.newTable(t)
	stale := e.newCart(t, tbl.ID())
	fresh := e.newCart(t, tbl.ID())

	cmd, err := commands.NewConfirmOrderCommand(fresh.ID(), order.DineIn)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	remaining, err := e.orderRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.True(t, remaining[0].IsEqual(fresh))

	_, err = e.orderRepo.GetByID(ctx, stale.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestConfirmOrderCommandHandler_RejectsConfirmedOrder(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := commands.NewConfirmOrderCommandHandler(e.orderRepo, e.tableRepo)

	tbl := e.newTable(t)
	o := e.newDineInOrder(t, tbl.ID())

	cmd, err := commands.NewConfirmOrderCommand(o.ID(), order.DineIn)
	require.NoError(t, err)
	assert.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrValueIsInvalid)
}

func TestConfirmOrderCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	e := newEnv(t)
	handler := commands.NewConfirmOrderCommandHandler(e.orderRepo, e.tableRepo)

	err := handler.Handle(t.Context(), commands.ConfirmOrderCommand{})
	assert.ErrorIs(t, err, commands.ErrConfirmOrderCommandIsNotConstructed)
}

func TestConfirmOrderCommandHandler_RetriesOnceOnConflict(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	flaky := &conflictingOrderRepo{OrderRepository: e.orderRepo, saveConflicts: 1}
	handler := commands.NewConfirmOrderCommandHandler(flaky, e.tableRepo)

	tbl := e.newTable(t)
	cart := e.newCart(t, tbl.ID())

	cmd, err := commands.NewConfirmOrderCommand(cart.ID(), order.DineIn)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	got, err := e.orderRepo.GetByID(ctx, cart.ID())
	require.NoError(t, err)
	assert.Equal(t, order.New, got.Status())

	gotTable, err := e.tableRepo.GetByID(ctx, tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, table.Occupied, gotTable.Status())
}

func TestConfirmOrderCommandHandler_SurfacesRepeatedConflict(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	flaky := &conflictingOrderRepo{OrderRepository: e.orderRepo, saveConflicts: 2}
	handler := commands.NewConfirmOrderCommandHandler(flaky, e.tableRepo)

	tbl := e.newTable(t)
	cart := e.newCart(t, tbl.ID())

	cmd, err := commands.NewConfirmOrderCommand(cart.ID(), order.DineIn)
	require.NoError(t, err)
	assert.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrConflict)

	got, err := e.orderRepo.GetByID(ctx, cart.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Temporary, got.Status())

	gotTable, err := e.tableRepo.GetByID(ctx, tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, table.Free, gotTable.Status())
}

func TestConfirmOrderCommandHandler_TakeawayLeavesTableFree(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := commands.NewConfirmOrderCommandHandler(e.orderRepo, e.tableRepo)

	tbl := e.newTable(t)
	cart := e.newCart(t, tbl.ID())

	cmd, err := commands.NewConfirmOrderCommand(cart.ID(), order.Takeaway)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	got, err := e.orderRepo.GetByID(ctx, cart.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Takeaway, got.Type())
	assert.Nil(t, got.TableID())

	gotTable, err := e.tableRepo.GetByID(ctx, tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, table.Free, gotTable.Status())
}
