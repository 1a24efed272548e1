package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
	"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
)

// UpdateItemStatusCommand advances one line item through the kitchen
// progression. The order status is re-derived from the items after the
// update.
type UpdateItemStatusCommand struct {
	orderID   kernel.DocID
	itemIndex int
	status    order.ItemStatus

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a command to set one item's kitchen
// sub-status.
func NewUpdateItemStatusCommand(orderID kernel.DocID, itemIndex int, status order.ItemStatus) (UpdateItemStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateItemStatusCommand{}, err
	}
	if itemIndex < 0 {
		return UpdateItemStatusCommand{}, errs.NewValueIsInvalidError("item index")
	}
	if err := status.Validate(); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return UpdateItemStatusCommand{
		orderID:   orderID,
		itemIndex: itemIndex,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the key of the order being updated.
func (c *UpdateItemStatusCommand) OrderID() kernel.DocID { return c.orderID }

// ItemIndex returns the position of the item within the order.
func (c *UpdateItemStatusCommand) ItemIndex() int { return c.itemIndex }

// Status returns the target kitchen sub-status.
func (c *UpdateItemStatusCommand) Status() order.ItemStatus { return c.status }

// Validate ensures the command was created through the constructor.
func (c *UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}
