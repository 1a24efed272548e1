package order

import (
	"fmt"

	"restopos/internal/pkg/errs"
)

// ItemStatus is the kitchen sub-status of a single line item. The order's
// status is derived from these: the order becomes InProgress as soon as any
// item leaves ItemNew and Ready only when every item is ItemReady.
type ItemStatus string

const (
	ItemNew        ItemStatus = "new"
	ItemInProgress ItemStatus = "in-progress"
	ItemReady      ItemStatus = "ready"
)

// Validate checks that the item status is one of the defined values.
func (s ItemStatus) Validate() error {
	switch s {
	case ItemNew, ItemInProgress, ItemReady:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("item status",
			fmt.Errorf("%q is not a valid item status", string(s)))
	}
}

// Item is one line of an order: a menu item reference with quantity, unit
// price, an optional free-text note, and its own kitchen sub-status.
type Item struct {
	MenuItemID string
	Name       string
	Quantity   int
	UnitPrice  int
	Note       string
	Status     ItemStatus
}

// NewItem creates a line item in the ItemNew sub-status.
func NewItem(menuItemID, name string, quantity, unitPrice int, note string) (Item, error) {
	if menuItemID == "" {
		return Item{}, errs.NewValueIsRequiredError("menu item reference")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is negative", unitPrice))
	}
	return Item{
		MenuItemID: menuItemID,
		Name:       name,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Note:       note,
		Status:     ItemNew,
	}, nil
}

// Total returns the line total.
func (i Item) Total() int {
	return i.Quantity * i.UnitPrice
}
