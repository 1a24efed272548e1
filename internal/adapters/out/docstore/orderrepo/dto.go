// Package orderrepo implements the live-order repository over the document
// store port.
package orderrepo

import (
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
)

// orderDTO is the persisted shape of a live order. Timestamps are RFC 3339
// strings in the documents, which is what time.Time marshals to.
type orderDTO struct {
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

// openStatuses are the statuses GetActive selects: the kitchen progression
// plus restored active orders.
func openStatuses() []any {
	return []any{
		string(order.New),
		string(order.InProgress),
		string(order.Ready),
		string(order.Active),
	}
}

func fromDomain(o *order.Order) orderDTO {
	dto := orderDTO{
		ID:            o.ID().String(),
		Rev:           o.Rev(),
		Type:          "order",
		OrderType:     string(o.Type()),
		Status:        string(o.Status()),
		Items:         itemsFromDomain(o.Items()),
		Note:          o.Note(),
		PaymentMethod: o.PaymentMethod(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		RestoredFrom:  o.RestoredFrom(),
		RestoredAt:    o.RestoredAt(),
	}

	if id := o.TableID(); id != nil {
		dto.TableID = id.String()
	}
	if id := o.CourierID(); id != nil {
		dto.CourierID = id.String()
	}
	return dto
}

func itemsFromDomain(items []order.Item) []itemDTO {
	dtos := make([]itemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemDTO{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Note:       item.Note,
			Status:     string(item.Status),
		})
	}
	return dtos
}

func itemsToDomain(dtos []itemDTO) []order.Item {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, order.Item{
			MenuItemID: dto.MenuItemID,
			Name:       dto.Name,
			Quantity:   dto.Quantity,
			UnitPrice:  dto.UnitPrice,
			Note:       dto.Note,
			Status:     order.ItemStatus(dto.Status),
		})
	}
	return items
}

func toDomain(dto orderDTO) (*order.Order, error) {
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

	return order.RestoreOrder(
		id,
		dto.Rev,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		tableID,
		courierID,
		itemsToDomain(dto.Items),
		dto.Note,
		dto.PaymentMethod,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.RestoredFrom,
		dto.RestoredAt,
	)
}
