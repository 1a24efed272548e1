// Package order contains the order aggregate, the center of the POS domain.
// An order moves through a confirmed kitchen progression whose status is
// derived from its items, is linked to a table or a courier, and can be
// moved identity-preservingly into and out of the archive collection.
package order

import (
	"errors"
	"fmt"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Type distinguishes how an order is fulfilled.
type Type string

const (
	DineIn        Type = "dineIn"
	Takeaway      Type = "takeaway"
	Delivery      Type = "delivery"
	TypeTemporary Type = "temporary"
)

// Validate checks that the order type is one of the defined values.
func (t Type) Validate() error {
	switch t {
	case DineIn, Takeaway, Delivery, TypeTemporary:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%q is not a valid order type", string(t)))
	}
}

// Order is the aggregate root for a restaurant order.
//
// Invariants:
//   - a dine-in order always references a table
//   - while the order is open (see Status.IsOpen) its table is occupied and
//     its courier, when assigned, is busy; the lifecycle coordinator keeps
//     those dependent documents in step
//   - the order status follows the derivation rule over item sub-statuses:
//     Ready iff every item is ready, InProgress as soon as any item left new
//   - only delivery orders carry a courier reference
type Order struct {
	id            kernel.DocID
	rev           string
	orderType     Type
	status        Status
	tableID       *kernel.DocID
	courierID     *kernel.DocID
	items         []Item
	note          string
	paymentMethod string
	createdAt     time.Time
	updatedAt     time.Time
	restoredFrom  string
	restoredAt    *time.Time
	isConstructed bool
}

// NewOrder creates an order. A TypeTemporary order starts in the Temporary
// status (a cart awaiting confirmation), every other type starts in New.
// A dine-in or temporary order must reference the table it belongs to.
func NewOrder(id kernel.DocID, orderType Type, tableID *kernel.DocID, items []Item, note string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if (orderType == DineIn || orderType == TypeTemporary) && (tableID == nil || tableID.IsZero()) {
		return nil, errs.NewValueIsRequiredError("tableId")
	}
	if orderType != DineIn && orderType != TypeTemporary && tableID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("tableId",
			fmt.Errorf("%s orders cannot reference a table", orderType))
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Status.Validate(); err != nil {
			return nil, err
		}
	}

	status := New
	if orderType == TypeTemporary {
		status = Temporary
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		orderType:     orderType,
		status:        status,
		tableID:       tableID,
		items:         append([]Item(nil), items...),
		note:          note,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence, including its revision
// token and restore provenance.
func RestoreOrder(
	id kernel.DocID,
	rev string,
	orderType Type,
	status Status,
	tableID *kernel.DocID,
	courierID *kernel.DocID,
	items []Item,
	note string,
	paymentMethod string,
	createdAt time.Time,
	updatedAt time.Time,
	restoredFrom string,
	restoredAt *time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		rev:           rev,
		orderType:     orderType,
		status:        status,
		tableID:       tableID,
		courierID:     courierID,
		items:         append([]Item(nil), items...),
		note:          note,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		restoredFrom:  restoredFrom,
		restoredAt:    restoredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by key.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's document key.
func (o *Order) ID() kernel.DocID { return o.id }

// Rev returns the revision token of the fetched state, "" before first save.
func (o *Order) Rev() string { return o.rev }

// SetRev records the revision token returned by a successful write.
// Called by repositories only.
func (o *Order) SetRev(rev string) { o.rev = rev }

// Type returns the fulfilment type.
func (o *Order) Type() Type { return o.orderType }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// TableID returns the referenced table's key, nil for orders without one.
func (o *Order) TableID() *kernel.DocID { return o.tableID }

// CourierID returns the assigned courier's key, nil while unassigned.
func (o *Order) CourierID() *kernel.DocID { return o.courierID }

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Note returns the order-level free-text note.
func (o *Order) Note() string { return o.note }

// PaymentMethod returns the payment method, set on completion.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last-modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// RestoredFrom returns the archive key this order was restored from,
// "" for orders that were never restored.
func (o *Order) RestoredFrom() string { return o.restoredFrom }

// RestoredAt returns the restore timestamp, nil for orders never restored.
func (o *Order) RestoredAt() *time.Time { return o.restoredAt }

// Total returns the sum of all line totals.
func (o *Order) Total() int {
	total := 0
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

// Touch updates the last-modification timestamp.
func (o *Order) Touch(now time.Time) {
	o.updatedAt = now.UTC()
}

// Confirm turns a temporary cart into a confirmed order. A dine-in order
// keeps its table reference; confirmation into takeaway or delivery drops
// it, since those types cannot reference a table. Any older temporary
// order for the same table is superseded by the lifecycle coordinator,
// not retained.
func (o *Order) Confirm(orderType Type) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	if err := orderType.Validate(); err != nil {
		return err
	}
	if orderType == TypeTemporary {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("cannot confirm into a temporary order"))
	}
	if orderType == DineIn && (o.tableID == nil || o.tableID.IsZero()) {
		return errs.NewValueIsRequiredError("tableId")
	}

	o.status = newStatus
	o.orderType = orderType
	if orderType != DineIn {
		o.tableID = nil
	}
	return nil
}

// SetItemStatus updates one item's kitchen sub-status and re-derives the
// order status. Only open orders accept item updates, and the kitchen
// progression is forward-only per item.
func (o *Order) SetItemStatus(index int, status ItemStatus) error {
	if !o.status.IsOpen() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q order does not accept item updates", o.status))
	}
	if index < 0 || index >= len(o.items) {
		return errs.NewValueIsInvalidErrorWithCause("item index",
			fmt.Errorf("%d is out of range", index))
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if itemRank(status) < itemRank(o.items[index].Status) {
		return errs.NewValueIsInvalidErrorWithCause("item status",
			fmt.Errorf("cannot move item back from %q to %q", o.items[index].Status, status))
	}

	o.items[index].Status = status
	o.deriveStatus()
	return nil
}

func itemRank(s ItemStatus) int {
	switch s {
	case ItemInProgress:
		return 1
	case ItemReady:
		return 2
	default:
		return 0
	}
}

// deriveStatus applies the all-items-ready rule: Ready iff every item is
// ready, InProgress as soon as any item left new, otherwise New. Derivation
// only moves orders between the kitchen statuses.
func (o *Order) deriveStatus() {
	switch o.status {
	case New, InProgress, Ready, Active:
	default:
		return
	}

	allReady := true
	anyStarted := false
	for _, item := range o.items {
		if item.Status != ItemReady {
			allReady = false
		}
		if item.Status != ItemNew {
			anyStarted = true
		}
	}

	switch {
	case allReady:
		o.status = Ready
	case anyStarted:
		o.status = InProgress
	default:
		o.status = New
	}
}

// AssignCourier assigns a courier to a delivery order. Assignment is an
// orthogonal attribute, not a status: the kitchen progression is unaffected.
func (o *Order) AssignCourier(courierID kernel.DocID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.orderType != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%s orders cannot have a courier", o.orderType))
	}
	if !o.status.IsOpen() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q order cannot be assigned a courier", o.status))
	}

	o.courierID = &courierID
	return nil
}

// ClearCourier removes the courier reference.
func (o *Order) ClearCourier() {
	o.courierID = nil
}

// Complete closes the order through billing with the given payment method.
func (o *Order) Complete(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentMethod = paymentMethod
	return nil
}
