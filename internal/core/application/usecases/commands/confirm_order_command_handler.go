package commands

import (
	"context"
	"errors"

	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
)

// ConfirmOrderCommandHandler orchestrates cart confirmation: the cart
// becomes a confirmed order, any older cart on the same table is superseded,
// and the referenced table is marked occupied.
type ConfirmOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	tableRepo ports.TableRepository
}

// NewConfirmOrderCommandHandler creates a handler for cart confirmation.
func NewConfirmOrderCommandHandler(
	orderRepo ports.OrderRepository,
	tableRepo ports.TableRepository,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		orderRepo: orderRepo,
		tableRepo: tableRepo,
	}
}

// Handle processes the confirmation command.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var confirmed *order.Order
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		o, err := h.orderRepo.GetByID(ctx, command.OrderID())
		if err != nil {
			return err
		}
		if err := o.Confirm(command.OrderType()); err != nil {
			return err
		}
		if err := h.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		confirmed = o
		return nil
	})
	if err != nil {
		return err
	}

	if tableID := confirmed.TableID(); tableID != nil {
		// The confirmed order is no longer temporary, so every cart the
		// lookup still finds on the table is a superseded one.
		for {
			prior, err := h.orderRepo.GetTemporaryByTable(ctx, *tableID)
			if errors.Is(err, errs.ErrObjectNotFound) {
				break
			}
			if err != nil {
				return err
			}
			if err := h.orderRepo.Delete(ctx, prior.ID(), prior.Rev()); err != nil {
				return err
			}
		}

		return retryOnConflict(ctx, func(ctx context.Context) error {
			tbl, err := h.tableRepo.GetByID(ctx, *tableID)
			if err != nil {
				return err
			}
			tbl.Occupy()
			return h.tableRepo.Save(ctx, tbl)
		})
	}
	return nil
}
