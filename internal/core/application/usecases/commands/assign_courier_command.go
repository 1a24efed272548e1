package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand assigns an available courier to a delivery order.
// The order gets the courier reference and the courier becomes busy, kept
// in step by the handler.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(orderID, courierID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignCourierCommand struct {
	orderID   kernel.DocID
	courierID kernel.DocID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign the courier to the
// delivery order.
func NewAssignCourierCommand(orderID, courierID kernel.DocID) (AssignCourierCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignCourierCommand{}, err
	}
	if err := courierID.Validate(); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the key of the delivery order.
func (c *AssignCourierCommand) OrderID() kernel.DocID { return c.orderID }

// CourierID returns the key of the courier being assigned.
func (c *AssignCourierCommand) CourierID() kernel.DocID { return c.courierID }

// Validate ensures the command was created through the constructor.
func (c *AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}
