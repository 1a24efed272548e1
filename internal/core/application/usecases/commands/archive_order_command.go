package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand moves a live order into the archive collection.
// The move is a two-phase copy-and-delete: the archive copy is written
// first, then the live document is deleted and the table released. The
// phases are not atomic; a failed second phase is logged and repaired by
// reconciliation.
type ArchiveOrderCommand struct {
	orderID kernel.DocID

	guard guard.ConstructorGuard
}

// NewArchiveOrderCommand creates a command to archive the order with the
// given key.
func NewArchiveOrderCommand(orderID kernel.DocID) (ArchiveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ArchiveOrderCommand{}, err
	}

	return ArchiveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the key of the live order being archived.
func (c *ArchiveOrderCommand) OrderID() kernel.DocID { return c.orderID }

// Validate ensures the command was created through the constructor.
func (c *ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}
