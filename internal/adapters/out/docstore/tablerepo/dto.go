// Package tablerepo implements the table repository over the document store
// port, handling the conversion between the table aggregate and its
// schemaless document shape.
package tablerepo

import (
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/table"
)

// tableDTO is the persisted shape of a table. The legacy documents carry the
// seating capacity under both "seats" and "capacity"; the repository always
// writes both and accepts either on read, defaulting to table.DefaultSeats
// when neither is present.
type tableDTO struct {
	ID          string          `json:"_id"`
	Rev         string          `json:"_rev,omitempty"`
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Seats       int             `json:"seats"`
	Capacity    int             `json:"capacity"`
	Status      string          `json:"status"`
	Reservation *reservationDTO `json:"reservation,omitempty"`
	Position    *positionDTO    `json:"position,omitempty"`
}

type reservationDTO struct {
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	PartySize int    `json:"partySize,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
}

type positionDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func fromDomain(tbl *table.Table) tableDTO {
	dto := tableDTO{
		ID:       tbl.ID().String(),
		Rev:      tbl.Rev(),
		Type:     "table",
		Name:     tbl.Name(),
		Seats:    tbl.Seats(),
		Capacity: tbl.Seats(),
		Status:   string(tbl.Status()),
	}

	if r := tbl.Reservation(); r != nil {
		dto.Reservation = &reservationDTO{
			Name: r.Name, Phone: r.Phone, PartySize: r.PartySize,
			Date: r.Date, Time: r.Time,
		}
	}
	if p := tbl.Position(); p != nil {
		dto.Position = &positionDTO{X: p.X, Y: p.Y}
	}
	return dto
}

// normalizeSeats resolves the seats/capacity synonym pair the way the legacy
// documents expect: either field may be missing, both must end up equal.
func normalizeSeats(seats, capacity int) int {
	switch {
	case seats > 0:
		return seats
	case capacity > 0:
		return capacity
	default:
		return table.DefaultSeats
	}
}

func toDomain(dto tableDTO) (*table.Table, error) {
	id, err := kernel.DocIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var reservation *table.Reservation
	if dto.Reservation != nil {
		reservation = &table.Reservation{
			Name:      dto.Reservation.Name,
			Phone:     dto.Reservation.Phone,
			PartySize: dto.Reservation.PartySize,
			Date:      dto.Reservation.Date,
			Time:      dto.Reservation.Time,
		}
	}

	var position *table.Position
	if dto.Position != nil {
		position = &table.Position{X: dto.Position.X, Y: dto.Position.Y}
	}

	return table.RestoreTable(
		id,
		dto.Rev,
		dto.Name,
		normalizeSeats(dto.Seats, dto.Capacity),
		table.Status(dto.Status),
		reservation,
		position,
	)
}
