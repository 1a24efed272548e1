package order

import (
	"errors"
	"fmt"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrArchivedOrderIsNotConstructed is returned when an ArchivedOrder was not
// created through NewArchivedOrder or RestoreArchivedOrder.
var ErrArchivedOrderIsNotConstructed = errors.New(
	"ArchivedOrder must be created via NewArchivedOrder or RestoreArchivedOrder")

// ArchivedOrder is an order that was moved into the archive collection.
// Structurally an order plus the archive timestamp; its existence in the
// archive collection and the live order collection is mutually exclusive for
// the same logical order. Archiving and restoring are identity-preserving
// copy-and-delete moves between the two collections.
type ArchivedOrder struct {
	order      *Order
	archivedAt time.Time

	// sourceID is the live document key the archive copy was made from.
	// Reconciliation uses it to remove a live document whose delete leg
	// failed after the archive copy was written.
	sourceID string
}

// NewArchivedOrder derives the archive copy of a live order. The copy gets a
// fresh key in the archive collection, the Archived status, and the archive
// timestamp; the source revision is dropped because the copy is a new
// document.
func NewArchivedOrder(from *Order, archivedAt time.Time) (*ArchivedOrder, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}

	status, err := from.Status().Archive()
	if err != nil {
		return nil, err
	}

	copied, err := RestoreOrder(
		kernel.NewDocID("archived_order"),
		"",
		from.Type(),
		status,
		from.TableID(),
		from.CourierID(),
		from.Items(),
		from.Note(),
		from.PaymentMethod(),
		from.CreatedAt(),
		archivedAt.UTC(),
		from.RestoredFrom(),
		from.RestoredAt(),
	)
	if err != nil {
		return nil, err
	}

	return &ArchivedOrder{
		order:      copied,
		archivedAt: archivedAt.UTC(),
		sourceID:   from.ID().String(),
	}, nil
}

// RestoreArchivedOrder reconstructs an archived order from persistence.
func RestoreArchivedOrder(order *Order, archivedAt time.Time, sourceID string) (*ArchivedOrder, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if order.Status() != Archived {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not an archived order", order.Status()))
	}
	if archivedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("archivedAt")
	}

	return &ArchivedOrder{order: order, archivedAt: archivedAt.UTC(), sourceID: sourceID}, nil
}

// Validate ensures the ArchivedOrder was created through a constructor.
func (a *ArchivedOrder) Validate() error {
	if a == nil || a.order == nil {
		return ErrArchivedOrderIsNotConstructed
	}
	return a.order.Validate()
}

// Order exposes the wrapped order state.
func (a *ArchivedOrder) Order() *Order { return a.order }

// ID returns the archive document key.
func (a *ArchivedOrder) ID() kernel.DocID { return a.order.ID() }

// Rev returns the archive document's revision token.
func (a *ArchivedOrder) Rev() string { return a.order.Rev() }

// SetRev records the revision token returned by a successful write.
// Called by repositories only.
func (a *ArchivedOrder) SetRev(rev string) { a.order.SetRev(rev) }

// ArchivedAt returns the archive timestamp.
func (a *ArchivedOrder) ArchivedAt() time.Time { return a.archivedAt }

// SourceID returns the live document key the archive copy was made from,
// "" for archive documents written before the field existed.
func (a *ArchivedOrder) SourceID() string { return a.sourceID }

// ToRestored derives the live order that re-enters the live collection:
// a fresh key, the Active status, restoredFrom set to the archive key, and
// restoredAt set to the given time. The archive timestamp is dropped.
func (a *ArchivedOrder) ToRestored(restoredAt time.Time) (*Order, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	status, err := a.order.Status().Restore()
	if err != nil {
		return nil, err
	}

	at := restoredAt.UTC()
	return RestoreOrder(
		kernel.NewDocID("order"),
		"",
		a.order.Type(),
		status,
		a.order.TableID(),
		a.order.CourierID(),
		a.order.Items(),
		a.order.Note(),
		a.order.PaymentMethod(),
		a.order.CreatedAt(),
		at,
		a.order.ID().String(),
		&at,
	)
}
