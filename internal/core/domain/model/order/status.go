package order

import (
	"fmt"

	"restopos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the kitchen and billing
// workflow.
//
// State transitions:
//
//	Temporary ──> New ──> InProgress ──> Ready ──> Completed
//	                (kitchen progression, forward-only, derived
//	                 from item sub-statuses)
//
//	any non-archived state ──> Archived (explicit archive action)
//	Archived ──> Active (restore; not back to the pre-archive value)
//
// Statuses are persisted as their string values, matching the documents in
// the orders collections.
type Status string

const (
	// Temporary is an in-progress cart before confirmation. A confirmed
	// order for the same table supersedes it.
	Temporary Status = "temporary"

	// New is a confirmed order not yet picked up by the kitchen.
	New Status = "new"

	// InProgress means at least one item has left the New sub-status.
	InProgress Status = "in-progress"

	// Ready means every item of the order is ready.
	Ready Status = "ready"

	// Completed means billing has closed the order.
	Completed Status = "completed"

	// Active marks a restored order. Restoration intentionally does not
	// resurrect the pre-archive status.
	Active Status = "active"

	// Archived marks a document in the archive collection.
	Archived Status = "archived"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Temporary:  {},
		New:        {},
		InProgress: {},
		Ready:      {},
		Completed:  {},
		Active:     {},
		Archived:   {},
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsOpen reports whether the order is non-terminal: visible on the floor,
// keeping its table occupied and its courier busy.
func (s Status) IsOpen() bool {
	switch s {
	case New, InProgress, Ready, Active:
		return true
	default:
		return false
	}
}

// Confirm transitions a temporary cart into a confirmed order.
//
// Valid transitions:
//   - Temporary -> New
//
// Returns an error for any other starting status.
func (s Status) Confirm() (Status, error) {
	if s != Temporary {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status to confirm", string(s)))
	}
	return New, nil
}

// Complete closes the order through billing.
//
// Valid transitions:
//   - Ready -> Completed
//
// Returns an error for any other starting status; the kitchen progression
// must have finished first.
func (s Status) Complete() (Status, error) {
	if s != Ready {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status to complete", string(s)))
	}
	return Completed, nil
}

// Archive moves the order into the archive collection.
//
// Valid from every status except Archived itself.
func (s Status) Archive() (Status, error) {
	if s == Archived {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order is already archived"))
	}
	return Archived, nil
}

// Restore brings an archived order back to the live collection as Active.
//
// Valid transitions:
//   - Archived -> Active
func (s Status) Restore() (Status, error) {
	if s != Archived {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status to restore", string(s)))
	}
	return Active, nil
}
