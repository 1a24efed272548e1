package commands

import (
	"context"
	"fmt"

	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
)

// AssignCourierCommandHandler couples a delivery order with a courier:
// the order's reference and the courier's busy status are written together,
// order first.
type AssignCourierCommandHandler struct {
	orderRepo   ports.OrderRepository
	courierRepo ports.CourierRepository
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(
	orderRepo ports.OrderRepository,
	courierRepo ports.CourierRepository,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		orderRepo:   orderRepo,
		courierRepo: courierRepo,
	}
}

// Handle processes the assignment command. Couriers that are busy or
// offline are rejected.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	c, err := h.courierRepo.GetByID(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if c.Status() != courier.Available {
		return errs.NewValueIsInvalidErrorWithCause("courier status",
			fmt.Errorf("%q courier cannot take a delivery", c.Status()))
	}

	err = retryOnConflict(ctx, func(ctx context.Context) error {
		o, err := h.orderRepo.GetByID(ctx, command.OrderID())
		if err != nil {
			return err
		}
		if err := o.AssignCourier(command.CourierID()); err != nil {
			return err
		}
		return h.orderRepo.Save(ctx, o)
	})
	if err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		c, err := h.courierRepo.GetByID(ctx, command.CourierID())
		if err != nil {
			return err
		}
		if err := c.MarkBusy(); err != nil {
			return err
		}
		return h.courierRepo.Save(ctx, c)
	})
}
