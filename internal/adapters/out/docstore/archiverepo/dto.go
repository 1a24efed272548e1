// Package archiverepo implements the archived-order repository over the
// document store port. Archive documents reuse the live order shape plus the
// archive timestamp and the "archived_order" type discriminator.
package archiverepo

import (
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
)

type archivedOrderDTO struct {
	ID            string     `json:"_id"`
	Rev           string     `json:"_rev,omitempty"`
	Type          string     `json:"type"`
	OrderType     string     `json:"orderType"`
	Status        string     `json:"status"`
	TableID       string     `json:"tableId,omitempty"`
	CourierID     string     `json:"courierId,omitempty"`
	Items         []itemDTO  `json:"items"`
	Note          string     `json:"note,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	ArchivedAt    time.Time  `json:"archivedAt"`
	SourceID      string     `json:"sourceId,omitempty"`
	RestoredFrom  string     `json:"restoredFrom,omitempty"`
	RestoredAt    *time.Time `json:"restoredAt,omitempty"`
}

type itemDTO struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unitPrice"`
	Note       string `json:"note,omitempty"`
	Status     string `json:"status"`
}

func fromDomain(a *order.ArchivedOrder) archivedOrderDTO {
	o := a.Order()
	dto := archivedOrderDTO{
		ID:            a.ID().String(),
		Rev:           a.Rev(),
		Type:          "archived_order",
		OrderType:     string(o.Type()),
		Status:        string(o.Status()),
		Note:          o.Note(),
		PaymentMethod: o.PaymentMethod(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		ArchivedAt:    a.ArchivedAt(),
		SourceID:      a.SourceID(),
		RestoredFrom:  o.RestoredFrom(),
		RestoredAt:    o.RestoredAt(),
	}

	for _, item := range o.Items() {
		dto.Items = append(dto.Items, itemDTO{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Note:       item.Note,
			Status:     string(item.Status),
		})
	}

	if id := o.TableID(); id != nil {
		dto.TableID = id.String()
	}
	if id := o.CourierID(); id != nil {
		dto.CourierID = id.String()
	}
	return dto
}

func toDomain(dto archivedOrderDTO) (*order.ArchivedOrder, error) {
	id, err := kernel.DocIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var tableID *kernel.DocID
	if dto.TableID != "" {
		tid, err := kernel.DocIDFromString(dto.TableID)
		if err != nil {
			return nil, err
		}
		tableID = &tid
	}

	var courierID *kernel.DocID
	if dto.CourierID != "" {
		cid, err := kernel.DocIDFromString(dto.CourierID)
		if err != nil {
			return nil, err
		}
		courierID = &cid
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Note:       item.Note,
			Status:     order.ItemStatus(item.Status),
		})
	}

	o, err := order.RestoreOrder(
		id,
		dto.Rev,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		tableID,
		courierID,
		items,
		dto.Note,
		dto.PaymentMethod,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.RestoredFrom,
		dto.RestoredAt,
	)
	if err != nil {
		return nil, err
	}
	return order.RestoreArchivedOrder(o, dto.ArchivedAt, dto.SourceID)
}
