package commands

import (
	"context"

	"restopos/internal/core/ports"
)

// UpdateReservationCommandHandler applies a reservation change as a
// fetch-modify-save loop, retried once on a lost revision race.
type UpdateReservationCommandHandler struct {
	tableRepo ports.TableRepository
}

// NewUpdateReservationCommandHandler creates a handler for reservation
// updates.
func NewUpdateReservationCommandHandler(tableRepo ports.TableRepository) UpdateReservationCommandHandler {
	return UpdateReservationCommandHandler{tableRepo: tableRepo}
}

// Handle processes the reservation command.
func (h UpdateReservationCommandHandler) Handle(ctx context.Context, command UpdateReservationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		tbl, err := h.tableRepo.GetByID(ctx, command.TableID())
		if err != nil {
			return err
		}

		if reservation := command.Reservation(); reservation != nil {
			if err := tbl.Reserve(*reservation); err != nil {
				return err
			}
		} else {
			tbl.CancelReservation()
		}
		return h.tableRepo.Save(ctx, tbl)
	})
}
