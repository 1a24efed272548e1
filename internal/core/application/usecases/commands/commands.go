// Package commands contains the lifecycle coordinator's write operations.
// Implements the Command pattern: each operation is a constructor-guarded
// command struct plus a handler holding the repositories it touches.
//
// The store has no transactions, so handlers follow two conventions instead:
// single-document writes are fetch-modify-save loops retried once when the
// write lost a revision race, and multi-document operations order their
// writes so that a crash in the middle leaves a state the reconciliation
// command can repair.
package commands

import (
	"context"
	"errors"

	"restopos/internal/pkg/errs"
)

// retryOnConflict runs attempt and runs it once more when the write lost a
// revision race. The attempt must fetch fresh state itself, otherwise the
// retry just replays the stale write.
func retryOnConflict(ctx context.Context, attempt func(context.Context) error) error {
	err := attempt(ctx)
	if errors.Is(err, errs.ErrConflict) {
		return attempt(ctx)
	}
	return err
}
