package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrRestoreOrderCommandIsNotConstructed = errors.New(
	"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
)

// RestoreOrderCommand brings an archived order back to the live collection
// as an active order carrying its restore provenance. The inverse two-phase
// move of ArchiveOrderCommand.
type RestoreOrderCommand struct {
	archivedID kernel.DocID

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand creates a command to restore the archive document
// with the given key.
func NewRestoreOrderCommand(archivedID kernel.DocID) (RestoreOrderCommand, error) {
	if err := archivedID.Validate(); err != nil {
		return RestoreOrderCommand{}, err
	}

	return RestoreOrderCommand{
		archivedID: archivedID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ArchivedID returns the key of the archive document being restored.
func (c *RestoreOrderCommand) ArchivedID() kernel.DocID { return c.archivedID }

// Validate ensures the command was created through the constructor.
func (c *RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}
