package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes a live order outright, without an archive
// copy. Its table is released and an assigned courier returns to available.
type DeleteOrderCommand struct {
	orderID kernel.DocID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the order with the
// given key.
func NewDeleteOrderCommand(orderID kernel.DocID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the key of the order being deleted.
func (c *DeleteOrderCommand) OrderID() kernel.DocID { return c.orderID }

// Validate ensures the command was created through the constructor.
func (c *DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}
