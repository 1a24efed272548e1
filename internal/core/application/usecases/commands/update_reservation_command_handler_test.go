package commands_test

import (
	"testing"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateReservationCommandHandler_SetAndClear(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := commands.NewUpdateReservationCommandHandler(e.tableRepo)

	tbl := e.newTable(t)

	cmd, err := commands.NewUpdateReservationCommand(tbl.ID(), &table.Reservation{
		Name: "Molnár család", Phone: "+36-70-123-4567", PartySize: 4,
		Date: "2026-09-05", Time: "19:00",
	})
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	got, err := e.tableRepo.GetByID(ctx, tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, table.Reserved, got.Status())
	require.NotNil(t, got.Reservation())
	assert.Equal(t, "Molnár család", got.Reservation().Name)

	cmd, err = commands.NewUpdateReservationCommand(tbl.ID(), nil)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	got, err = e.tableRepo.GetByID(ctx, tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, table.Free, got.Status())
	assert.Nil(t, got.Reservation())
}

func TestUpdateReservationCommandHandler_RejectsOccupiedTable(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	handler := commands.NewUpdateReservationCommandHandler(e.tableRepo)

	tbl := e.newTable(t)
	tbl.Occupy()
	require.NoError(t, e.tableRepo.Save(ctx, tbl))

	cmd, err := commands.NewUpdateReservationCommand(tbl.ID(), &table.Reservation{Name: "Late Caller"})
	require.NoError(t, err)
	assert.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrValueIsInvalid)
}
