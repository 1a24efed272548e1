package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand turns a temporary cart into a confirmed order of the
// given fulfilment type. Any older temporary cart on the same table is
// superseded, and the table is marked occupied.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(orderID, order.DineIn)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ConfirmOrderCommand struct {
	orderID   kernel.DocID
	orderType order.Type

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the cart with the
// given key into the given fulfilment type.
func NewConfirmOrderCommand(orderID kernel.DocID, orderType order.Type) (ConfirmOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}
	if err := orderType.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID:   orderID,
		orderType: orderType,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the key of the cart being confirmed.
func (c *ConfirmOrderCommand) OrderID() kernel.DocID { return c.orderID }

// OrderType returns the fulfilment type the cart is confirmed into.
func (c *ConfirmOrderCommand) OrderType() order.Type { return c.orderType }

// Validate ensures the command was created through the constructor.
func (c *ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}
