// Package customer contains the customer record. Phone numbers are unique
// across customers, enforced at the application layer by a
// lookup-before-write check in the repository.
package customer

import (
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// Customer is a delivery/takeaway customer record.
type Customer struct {
	ID            kernel.DocID
	Rev           string
	Name          string
	Phone         string
	Address       string
	LastOrderDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCustomer creates a customer record. Name and phone are required; the
// phone is the application-level unique key.
func NewCustomer(id kernel.DocID, name, phone, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("customer phone")
	}

	now := time.Now().UTC()
	return &Customer{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks the record's required fields.
func (c *Customer) Validate() error {
	if c == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if err := c.ID.Validate(); err != nil {
		return err
	}
	if c.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if c.Phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	return nil
}

// RecordOrder notes that the customer placed an order at the given time.
func (c *Customer) RecordOrder(at time.Time) {
	utc := at.UTC()
	c.LastOrderDate = &utc
}
