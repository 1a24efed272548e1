package commands

import (
	"errors"

	"restopos/internal/pkg/guard"
)

var ErrReconcileStatusesCommandIsNotConstructed = errors.New(
	"ReconcileStatusesCommand must be created via NewReconcileStatusesCommand constructor",
)

// ReconcileStatusesCommand triggers a sweep repairing the drift the
// non-atomic two-phase operations can leave behind: table and courier
// statuses are recomputed from the live orders, and duplicate documents
// between the live and archive collections are removed.
type ReconcileStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileStatusesCommand creates a new reconciliation trigger.
func NewReconcileStatusesCommand() ReconcileStatusesCommand {
	return ReconcileStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileStatusesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileStatusesCommandIsNotConstructed)
}
