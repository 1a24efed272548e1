package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand closes an order through billing: the order becomes
// completed, an invoice is written, the table is released, and an assigned
// courier returns to available.
type CompleteOrderCommand struct {
	orderID       kernel.DocID
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to close the order with the
// given payment method.
func NewCompleteOrderCommand(orderID kernel.DocID, paymentMethod string) (CompleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}
	if paymentMethod == "" {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredError("payment method")
	}

	return CompleteOrderCommand{
		orderID:       orderID,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the key of the order being completed.
func (c *CompleteOrderCommand) OrderID() kernel.DocID { return c.orderID }

// PaymentMethod returns the payment method closing the order.
func (c *CompleteOrderCommand) PaymentMethod() string { return c.paymentMethod }

// Validate ensures the command was created through the constructor.
func (c *CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}
