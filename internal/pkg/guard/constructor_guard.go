// Package guard implements the constructor-guard pattern used by commands and
// queries to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor or as a zero value. Embedding it in a command or query and
// checking it in Validate keeps invariants intact without exporting fields.
//
// Example:
//
//	var ErrArchiveOrderCommandIsNotConstructed = errors.New(
//	    "ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor")
//
//	type ArchiveOrderCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ArchiveOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in the
// constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor, validationError otherwise. A nil validationError falls back to
// ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
