// Package addressrepo implements the delivery-address repository over the
// document store port. The composed "fullAddress" display field is
// recomputed here on every write so documents never drift from their parts.
package addressrepo

import (
	"restopos/internal/core/domain/model/address"
	"restopos/internal/core/domain/model/kernel"
)

type addressDTO struct {
	ID          string `json:"_id"`
	Rev         string `json:"_rev,omitempty"`
	Type        string `json:"type"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber,omitempty"`
	City        string `json:"city,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
	FullAddress string `json:"fullAddress"`
	Active      bool   `json:"active"`
}

func fromDomain(a *address.Address) addressDTO {
	return addressDTO{
		ID:          a.ID.String(),
		Rev:         a.Rev,
		Type:        "address",
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		City:        a.City,
		ZipCode:     a.ZipCode,
		FullAddress: a.Compose(),
		Active:      a.Active,
	}
}

func toDomain(dto addressDTO) (*address.Address, error) {
	id, err := kernel.DocIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return &address.Address{
		ID:          id,
		Rev:         dto.Rev,
		Street:      dto.Street,
		HouseNumber: dto.HouseNumber,
		City:        dto.City,
		ZipCode:     dto.ZipCode,
		FullAddress: dto.FullAddress,
		Active:      dto.Active,
	}, nil
}
