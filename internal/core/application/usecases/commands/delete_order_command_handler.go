package commands

import (
	"context"
	"log/slog"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/ports"
)

// DeleteOrderCommandHandler removes a live order and unwinds its dependent
// documents: the table is released and an assigned courier freed, with
// failures logged for reconciliation.
type DeleteOrderCommandHandler struct {
	orderRepo   ports.OrderRepository
	tableRepo   ports.TableRepository
	courierRepo ports.CourierRepository
	logger      *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	orderRepo ports.OrderRepository,
	tableRepo ports.TableRepository,
	courierRepo ports.CourierRepository,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		orderRepo:   orderRepo,
		tableRepo:   tableRepo,
		courierRepo: courierRepo,
		logger:      logger,
	}
}

// Handle processes the deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var deleted *order.Order
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		o, err := h.orderRepo.GetByID(ctx, command.OrderID())
		if err != nil {
			return err
		}
		if err := h.orderRepo.Delete(ctx, o.ID(), o.Rev()); err != nil {
			return err
		}
		deleted = o
		return nil
	})
	if err != nil {
		return err
	}

	if tableID := deleted.TableID(); tableID != nil {
		h.releaseTable(ctx, *tableID, deleted.ID())
	}
	if courierID := deleted.CourierID(); courierID != nil {
		h.freeCourier(ctx, *courierID, deleted.ID())
	}
	return nil
}

func (h DeleteOrderCommandHandler) releaseTable(ctx context.Context, tableID, orderID kernel.DocID) {
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		tbl, err := h.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return err
		}
		tbl.Release()
		return h.tableRepo.Save(ctx, tbl)
	})
	if err != nil {
		h.logger.Warn("deletion could not release table, leaving it to reconciliation",
			"tableId", tableID.String(), "orderId", orderID.String(), "error", err)
	}
}

func (h DeleteOrderCommandHandler) freeCourier(ctx context.Context, courierID, orderID kernel.DocID) {
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		c, err := h.courierRepo.GetByID(ctx, courierID)
		if err != nil {
			return err
		}
		c.MarkAvailable()
		return h.courierRepo.Save(ctx, c)
	})
	if err != nil {
		h.logger.Warn("deletion could not free courier, leaving it to reconciliation",
			"courierId", courierID.String(), "orderId", orderID.String(), "error", err)
	}
}
