package queries

import (
	"time"

	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/customer"
	"restopos/internal/core/domain/model/invoice"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/table"
)

// OrderResponse is the read model of a live or archived order.
type OrderResponse struct {
	ID            string
	Type          string
	Status        string
	TableID       string
	CourierID     string
	Items         []OrderItemResponse
	Note          string
	PaymentMethod string
	Total         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	RestoredFrom  string
	ArchivedAt    *time.Time
}

// OrderItemResponse is one line of an order read model.
type OrderItemResponse struct {
	MenuItemID string
	Name       string
	Quantity   int
	UnitPrice  int
	Status     string
}

func orderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID().String(),
		Type:          string(o.Type()),
		Status:        string(o.Status()),
		Note:          o.Note(),
		PaymentMethod: o.PaymentMethod(),
		Total:         o.Total(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		RestoredFrom:  o.RestoredFrom(),
	}
	if id := o.TableID(); id != nil {
		resp.TableID = id.String()
	}
	if id := o.CourierID(); id != nil {
		resp.CourierID = id.String()
	}
	for _, item := range o.Items() {
		resp.Items = append(resp.Items, OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Status:     string(item.Status),
		})
	}
	return resp
}

func archivedOrderResponse(a *order.ArchivedOrder) OrderResponse {
	resp := orderResponse(a.Order())
	archivedAt := a.ArchivedAt()
	resp.ArchivedAt = &archivedAt
	return resp
}

func orderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, orderResponse(o))
	}
	return responses
}

// TableResponse is the read model of a table.
type TableResponse struct {
	ID          string
	Name        string
	Seats       int
	Status      string
	Reservation *table.Reservation
}

func tableResponses(tables []*table.Table) []TableResponse {
	responses := make([]TableResponse, 0, len(tables))
	for _, tbl := range tables {
		responses = append(responses, TableResponse{
			ID:          tbl.ID().String(),
			Name:        tbl.Name(),
			Seats:       tbl.Seats(),
			Status:      string(tbl.Status()),
			Reservation: tbl.Reservation(),
		})
	}
	return responses
}

// CourierResponse is the read model of a courier.
type CourierResponse struct {
	ID      string
	Name    string
	Phone   string
	Vehicle string
	Status  string
}

func courierResponses(couriers []*courier.Courier) []CourierResponse {
	responses := make([]CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		responses = append(responses, CourierResponse{
			ID:      c.ID().String(),
			Name:    c.Name(),
			Phone:   c.Phone(),
			Vehicle: c.Vehicle(),
			Status:  string(c.Status()),
		})
	}
	return responses
}

// CustomerResponse is the read model of a customer record.
type CustomerResponse struct {
	ID            string
	Name          string
	Phone         string
	Address       string
	LastOrderDate *time.Time
}

func customerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Phone:         c.Phone,
		Address:       c.Address,
		LastOrderDate: c.LastOrderDate,
	}
}

// InvoiceResponse is the read model of an invoice.
type InvoiceResponse struct {
	ID            string
	OrderID       string
	Subtotal      int
	TaxAmount     int
	Total         int
	PaymentMethod string
	CreatedAt     time.Time
}

func invoiceResponses(invoices []*invoice.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, InvoiceResponse{
			ID:            inv.ID.String(),
			OrderID:       inv.OrderID,
			Subtotal:      inv.Subtotal,
			TaxAmount:     inv.TaxAmount,
			Total:         inv.Total,
			PaymentMethod: inv.PaymentMethod,
			CreatedAt:     inv.CreatedAt,
		})
	}
	return responses
}
