// Package table contains the restaurant table aggregate. A table's occupancy
// status tracks the orders referencing it; the lifecycle coordinator mutates
// it alongside order transitions, reservation actions mutate it directly.
package table

import (
	"errors"
	"fmt"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

// DefaultSeats is used when a table is created without a seating capacity.
const DefaultSeats = 4

// Status is the occupancy state of a table.
type Status string

const (
	Free     Status = "free"
	Occupied Status = "occupied"
	Reserved Status = "reserved"
)

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case Free, Occupied, Reserved:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("table status",
			fmt.Errorf("%q is not a valid table status", string(s)))
	}
}

// Reservation is an optional booking attached to a table.
type Reservation struct {
	Name      string
	Phone     string
	PartySize int
	Date      string
	Time      string
}

// Position is an optional layout coordinate of the table on the floor plan.
type Position struct {
	X int
	Y int
}

// Table is the aggregate for a restaurant table.
//
// The persisted documents historically carry the seating capacity under both
// a "seats" and a "capacity" field; the repository keeps those synonyms
// mirrored, the aggregate holds a single value.
type Table struct {
	id            kernel.DocID
	rev           string
	name          string
	seats         int
	status        Status
	reservation   *Reservation
	position      *Position
	isConstructed bool
}

// NewTable creates a free table. A non-positive seat count falls back to
// DefaultSeats.
func NewTable(id kernel.DocID, name string, seats int) (*Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("table name")
	}
	if seats <= 0 {
		seats = DefaultSeats
	}

	return &Table{
		id:            id,
		name:          name,
		seats:         seats,
		status:        Free,
		isConstructed: true,
	}, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(
	id kernel.DocID,
	rev string,
	name string,
	seats int,
	status Status,
	reservation *Reservation,
	position *Position,
) (*Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if seats <= 0 {
		seats = DefaultSeats
	}

	return &Table{
		id:            id,
		rev:           rev,
		name:          name,
		seats:         seats,
		status:        status,
		reservation:   reservation,
		position:      position,
		isConstructed: true,
	}, nil
}

// Validate ensures the Table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table's document key.
func (t *Table) ID() kernel.DocID { return t.id }

// Rev returns the revision token of the fetched state, "" before first save.
func (t *Table) Rev() string { return t.rev }

// SetRev records the revision token returned by a successful write.
// Called by repositories only.
func (t *Table) SetRev(rev string) { t.rev = rev }

// Name returns the display name.
func (t *Table) Name() string { return t.name }

// Seats returns the seating capacity.
func (t *Table) Seats() int { return t.seats }

// Status returns the occupancy status.
func (t *Table) Status() Status { return t.status }

// Reservation returns the attached reservation, nil when there is none.
func (t *Table) Reservation() *Reservation { return t.reservation }

// Position returns the layout position, nil when the table is not placed.
func (t *Table) Position() *Position { return t.position }

// Rename changes the display name.
func (t *Table) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("table name")
	}
	t.name = name
	return nil
}

// Resize changes the seating capacity, falling back to DefaultSeats for a
// non-positive value.
func (t *Table) Resize(seats int) {
	if seats <= 0 {
		seats = DefaultSeats
	}
	t.seats = seats
}

// Place sets or clears the layout position.
func (t *Table) Place(position *Position) {
	t.position = position
}

// Occupy marks the table occupied. Called by the lifecycle coordinator when
// an open order references the table.
func (t *Table) Occupy() {
	t.status = Occupied
}

// Release returns the table to the floor. A table with a pending reservation
// becomes Reserved, every other table becomes Free.
func (t *Table) Release() {
	if t.reservation != nil {
		t.status = Reserved
		return
	}
	t.status = Free
}

// Reserve attaches a reservation and marks the table reserved. An occupied
// table cannot be reserved.
func (t *Table) Reserve(reservation Reservation) error {
	if t.status == Occupied {
		return errs.NewValueIsInvalidErrorWithCause("table status",
			fmt.Errorf("occupied table cannot be reserved"))
	}
	if reservation.Name == "" {
		return errs.NewValueIsRequiredError("reservation name")
	}

	t.reservation = &reservation
	t.status = Reserved
	return nil
}

// CancelReservation removes the reservation. A reserved table becomes free;
// an occupied table stays occupied.
func (t *Table) CancelReservation() {
	t.reservation = nil
	if t.status == Reserved {
		t.status = Free
	}
}
