// Package address contains the delivery address record used for address
// lookup on order entry.
package address

import (
	"strings"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// Address is one deliverable street address. FullAddress is the composed
// display string and is recomputed at the repository boundary on save.
type Address struct {
	ID          kernel.DocID
	Rev         string
	Street      string
	HouseNumber string
	City        string
	ZipCode     string
	FullAddress string
	Active      bool
}

// NewAddress creates an active address record with its composed full form.
func NewAddress(id kernel.DocID, street, houseNumber, city, zipCode string) (*Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if street == "" {
		return nil, errs.NewValueIsRequiredError("street")
	}

	a := &Address{
		ID:          id,
		Street:      street,
		HouseNumber: houseNumber,
		City:        city,
		ZipCode:     zipCode,
		Active:      true,
	}
	a.FullAddress = a.Compose()
	return a, nil
}

// Compose builds the display form "zip, city, street houseNumber" from the
// non-empty parts.
func (a *Address) Compose() string {
	var parts []string
	if a.ZipCode != "" {
		parts = append(parts, a.ZipCode)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	street := strings.TrimSpace(a.Street + " " + a.HouseNumber)
	if street != "" {
		parts = append(parts, street)
	}
	return strings.Join(parts, ", ")
}

// Validate checks the record's required fields.
func (a *Address) Validate() error {
	if a == nil {
		return errs.NewValueIsRequiredError("address")
	}
	if err := a.ID.Validate(); err != nil {
		return err
	}
	if a.Street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	return nil
}
