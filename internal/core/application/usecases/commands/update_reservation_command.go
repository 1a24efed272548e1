package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/pkg/guard"
)

var ErrUpdateReservationCommandIsNotConstructed = errors.New(
	"UpdateReservationCommand must be created via NewUpdateReservationCommand constructor",
)

// UpdateReservationCommand sets or clears a table's reservation. A nil
// reservation clears it; setting one on an occupied table is rejected by
// the aggregate.
type UpdateReservationCommand struct {
	tableID     kernel.DocID
	reservation *table.Reservation

	guard guard.ConstructorGuard
}

// NewUpdateReservationCommand creates a command to update the reservation
// of the table with the given key.
func NewUpdateReservationCommand(tableID kernel.DocID, reservation *table.Reservation) (UpdateReservationCommand, error) {
	if err := tableID.Validate(); err != nil {
		return UpdateReservationCommand{}, err
	}

	return UpdateReservationCommand{
		tableID:     tableID,
		reservation: reservation,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// TableID returns the key of the table.
func (c *UpdateReservationCommand) TableID() kernel.DocID { return c.tableID }

// Reservation returns the reservation to attach, nil to clear.
func (c *UpdateReservationCommand) Reservation() *table.Reservation { return c.reservation }

// Validate ensures the command was created through the constructor.
func (c *UpdateReservationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReservationCommandIsNotConstructed)
}
