// Package customerrepo implements the customer repository over the document
// store port. Phone-number uniqueness is a lookup-before-write check here,
// not a store constraint, so concurrent writers remain a known race.
package customerrepo

import (
	"time"

	"restopos/internal/core/domain/model/customer"
	"restopos/internal/core/domain/model/kernel"
)

type customerDTO struct {
	ID            string     `json:"_id"`
	Rev           string     `json:"_rev,omitempty"`
	Type          string     `json:"type"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address,omitempty"`
	LastOrderDate *time.Time `json:"lastOrderDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func fromDomain(c *customer.Customer) customerDTO {
	return customerDTO{
		ID:            c.ID.String(),
		Rev:           c.Rev,
		Type:          "customer",
		Name:          c.Name,
		Phone:         c.Phone,
		Address:       c.Address,
		LastOrderDate: c.LastOrderDate,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toDomain(dto customerDTO) (*customer.Customer, error) {
	id, err := kernel.DocIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return &customer.Customer{
		ID:            id,
		Rev:           dto.Rev,
		Name:          dto.Name,
		Phone:         dto.Phone,
		Address:       dto.Address,
		LastOrderDate: dto.LastOrderDate,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}, nil
}
