// Package courierrepo implements the courier repository over the document
// store port.
package courierrepo

import (
	"time"

	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/kernel"
)

type courierDTO struct {
	ID        string    `json:"_id"`
	Rev       string    `json:"_rev,omitempty"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Vehicle   string    `json:"vehicle,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func fromDomain(c *courier.Courier) courierDTO {
	return courierDTO{
		ID:        c.ID().String(),
		Rev:       c.Rev(),
		Type:      "courier",
		Name:      c.Name(),
		Phone:     c.Phone(),
		Email:     c.Email(),
		Vehicle:   c.Vehicle(),
		Status:    string(c.Status()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toDomain(dto courierDTO) (*courier.Courier, error) {
	id, err := kernel.DocIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return courier.RestoreCourier(
		id,
		dto.Rev,
		dto.Name,
		dto.Phone,
		dto.Email,
		dto.Vehicle,
		courier.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
