package table_test

import (
	"testing"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, seats int) *table.Table {
	t.Helper()
	tbl, err := table.NewTable(kernel.NewDocID("table"), "Terrace 1", seats)
	require.NoError(t, err)
	return tbl
}

func TestNewTable(t *testing.T) {
	tbl := newTable(t, 6)
	assert.Equal(t, "Terrace 1", tbl.Name())
	assert.Equal(t, 6, tbl.Seats())
	assert.Equal(t, table.Free, tbl.Status())

	t.Run("zero seats fall back to the default", func(t *testing.T) {
		assert.Equal(t, table.DefaultSeats, newTable(t, 0).Seats())
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		_, err := table.NewTable(kernel.NewDocID("table"), "", 4)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTable_OccupyRelease(t *testing.T) {
	tbl := newTable(t, 4)

	tbl.Occupy()
	assert.Equal(t, table.Occupied, tbl.Status())

	tbl.Release()
	assert.Equal(t, table.Free, tbl.Status())
}

func TestTable_Release_KeepsReservation(t *testing.T) {
	tbl := newTable(t, 4)
	require.NoError(t, tbl.Reserve(table.Reservation{
		Name: "Kovács", Phone: "+36-20-123-4567", PartySize: 3,
		Date: "2025-04-02", Time: "19:00",
	}))

	tbl.Occupy()
	tbl.Release()
	assert.Equal(t, table.Reserved, tbl.Status())
	assert.NotNil(t, tbl.Reservation())
}

func TestTable_Reserve(t *testing.T) {
	t.Run("occupied table cannot be reserved", func(t *testing.T) {
		tbl := newTable(t, 4)
		tbl.Occupy()
		err := tbl.Reserve(table.Reservation{Name: "Nagy"})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("reservation needs a name", func(t *testing.T) {
		tbl := newTable(t, 4)
		assert.ErrorIs(t, tbl.Reserve(table.Reservation{}), errs.ErrValueIsRequired)
	})

	t.Run("cancel frees a reserved table", func(t *testing.T) {
		tbl := newTable(t, 4)
		require.NoError(t, tbl.Reserve(table.Reservation{Name: "Nagy"}))
		assert.Equal(t, table.Reserved, tbl.Status())

		tbl.CancelReservation()
		assert.Equal(t, table.Free, tbl.Status())
		assert.Nil(t, tbl.Reservation())
	})
}

func TestRestoreTable_InvalidStatus(t *testing.T) {
	_, err := table.RestoreTable(kernel.NewDocID("table"), "1-a", "Bar", 2, "status-free", nil, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTable_Validate(t *testing.T) {
	var tbl table.Table
	assert.ErrorIs(t, tbl.Validate(), table.ErrTableIsNotConstructed)
}
