// Package courier contains the delivery courier aggregate. A courier's
// availability tracks the delivery orders referencing it; the lifecycle
// coordinator keeps the two in step on assignment and release.
package courier

import (
	"errors"
	"fmt"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through NewCourier or RestoreCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")

// Status is the canonical availability state of a courier. The persisted
// documents historically mixed several vocabularies for this concept; this
// enumeration is the single one written going forward.
type Status string

const (
	// Available couriers can be assigned to delivery orders.
	Available Status = "available"

	// Busy couriers carry an open delivery order.
	Busy Status = "busy"

	// Offline couriers are off shift and never assigned automatically.
	Offline Status = "offline"
)

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case Available, Busy, Offline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("courier status",
			fmt.Errorf("%q is not a valid courier status", string(s)))
	}
}

// Courier is the aggregate for a delivery courier.
type Courier struct {
	id            kernel.DocID
	rev           string
	name          string
	phone         string
	email         string
	vehicle       string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	isConstructed bool
}

// NewCourier creates an available courier.
func NewCourier(id kernel.DocID, name, phone string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("courier name")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("courier phone")
	}

	now := time.Now().UTC()
	return &Courier{
		id:            id,
		name:          name,
		phone:         phone,
		status:        Available,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(
	id kernel.DocID,
	rev string,
	name, phone, email, vehicle string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Courier{
		id:            id,
		rev:           rev,
		name:          name,
		phone:         phone,
		email:         email,
		vehicle:       vehicle,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's document key.
func (c *Courier) ID() kernel.DocID { return c.id }

// Rev returns the revision token of the fetched state, "" before first save.
func (c *Courier) Rev() string { return c.rev }

// SetRev records the revision token returned by a successful write.
// Called by repositories only.
func (c *Courier) SetRev(rev string) { c.rev = rev }

// Name returns the courier's name.
func (c *Courier) Name() string { return c.name }

// Phone returns the contact phone number.
func (c *Courier) Phone() string { return c.phone }

// Email returns the optional contact email.
func (c *Courier) Email() string { return c.email }

// Vehicle returns the optional vehicle description.
func (c *Courier) Vehicle() string { return c.vehicle }

// Status returns the availability status.
func (c *Courier) Status() Status { return c.status }

// CreatedAt returns the creation timestamp.
func (c *Courier) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last-modification timestamp.
func (c *Courier) UpdatedAt() time.Time { return c.updatedAt }

// Touch updates the last-modification timestamp.
func (c *Courier) Touch(now time.Time) { c.updatedAt = now.UTC() }

// UpdateContact changes the contact and vehicle details.
func (c *Courier) UpdateContact(phone, email, vehicle string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("courier phone")
	}
	c.phone = phone
	c.email = email
	c.vehicle = vehicle
	return nil
}

// MarkBusy puts the courier on an open delivery. An offline courier cannot
// be assigned.
func (c *Courier) MarkBusy() error {
	if c.status == Offline {
		return errs.NewValueIsInvalidErrorWithCause("courier status",
			fmt.Errorf("offline courier cannot be assigned"))
	}
	c.status = Busy
	return nil
}

// MarkAvailable returns the courier to the pool.
func (c *Courier) MarkAvailable() {
	c.status = Available
}

// MarkOffline takes the courier off shift.
func (c *Courier) MarkOffline() {
	c.status = Offline
}
