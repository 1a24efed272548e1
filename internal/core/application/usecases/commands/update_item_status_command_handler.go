package commands

import (
	"context"

	"restopos/internal/core/ports"
)

// UpdateItemStatusCommandHandler applies one item's status change as a
// fetch-modify-save loop, retried once on a lost revision race.
type UpdateItemStatusCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewUpdateItemStatusCommandHandler creates a handler for item status updates.
func NewUpdateItemStatusCommandHandler(orderRepo ports.OrderRepository) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{orderRepo: orderRepo}
}

// Handle processes the item status command.
func (h UpdateItemStatusCommandHandler) Handle(ctx context.Context, command UpdateItemStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		o, err := h.orderRepo.GetByID(ctx, command.OrderID())
		if err != nil {
			return err
		}
		if err := o.SetItemStatus(command.ItemIndex(), command.Status()); err != nil {
			return err
		}
		return h.orderRepo.Save(ctx, o)
	})
}
