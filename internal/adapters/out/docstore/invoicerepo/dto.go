// Package invoicerepo implements the invoice repository over the document
// store port.
package invoicerepo

import (
	"time"

	"restopos/internal/core/domain/model/invoice"
	"restopos/internal/core/domain/model/kernel"
)

type invoiceDTO struct {
	ID             string    `json:"_id"`
	Rev            string    `json:"_rev,omitempty"`
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	Lines          []lineDTO `json:"lines"`
	Subtotal       int       `json:"subtotal"`
	TaxRatePercent int       `json:"taxRate"`
	TaxAmount      int       `json:"taxAmount"`
	Total          int       `json:"total"`
	PaymentMethod  string    `json:"paymentMethod"`
	CreatedAt      time.Time `json:"createdAt"`
}

type lineDTO struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
	Total     int    `json:"total"`
}

func fromDomain(inv *invoice.Invoice) invoiceDTO {
	dto := invoiceDTO{
		ID:             inv.ID.String(),
		Rev:            inv.Rev,
		Type:           "invoice",
		OrderID:        inv.OrderID,
		Subtotal:       inv.Subtotal,
		TaxRatePercent: inv.TaxRatePercent,
		TaxAmount:      inv.TaxAmount,
		Total:          inv.Total,
		PaymentMethod:  inv.PaymentMethod,
		CreatedAt:      inv.CreatedAt,
	}
	for _, line := range inv.Lines {
		dto.Lines = append(dto.Lines, lineDTO(line))
	}
	return dto
}

func toDomain(dto invoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.DocIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]invoice.Line, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, invoice.Line(line))
	}

	return &invoice.Invoice{
		ID:             id,
		Rev:            dto.Rev,
		OrderID:        dto.OrderID,
		Lines:          lines,
		Subtotal:       dto.Subtotal,
		TaxRatePercent: dto.TaxRatePercent,
		TaxAmount:      dto.TaxAmount,
		Total:          dto.Total,
		PaymentMethod:  dto.PaymentMethod,
		CreatedAt:      dto.CreatedAt,
	}, nil
}
