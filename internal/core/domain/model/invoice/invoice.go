// Package invoice contains the invoice record created when billing closes an
// order.
package invoice

import (
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"
)

// DefaultTaxRatePercent is the VAT rate applied when no explicit rate is
// configured.
const DefaultTaxRatePercent = 27

// Line is one billed line of an invoice.
type Line struct {
	Name      string
	Quantity  int
	UnitPrice int
	Total     int
}

// Invoice records the billing of a completed order, with the tax broken out
// of the gross total.
type Invoice struct {
	ID             kernel.DocID
	Rev            string
	OrderID        string
	Lines          []Line
	Subtotal       int
	TaxRatePercent int
	TaxAmount      int
	Total          int
	PaymentMethod  string
	CreatedAt      time.Time
}

// NewInvoice derives the invoice for a completed order. Totals are gross;
// the tax amount is the VAT content of the gross total at the given rate.
func NewInvoice(id kernel.DocID, from *order.Order, taxRatePercent int, createdAt time.Time) (*Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if from.PaymentMethod() == "" {
		return nil, errs.NewValueIsRequiredError("payment method")
	}
	if taxRatePercent <= 0 {
		taxRatePercent = DefaultTaxRatePercent
	}

	items := from.Items()
	lines := make([]Line, 0, len(items))
	total := 0
	for _, item := range items {
		lines = append(lines, Line{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total(),
		})
		total += item.Total()
	}

	// VAT content of a gross amount: gross * rate / (100 + rate).
	taxAmount := total * taxRatePercent / (100 + taxRatePercent)

	return &Invoice{
		ID:             id,
		OrderID:        from.ID().String(),
		Lines:          lines,
		Subtotal:       total - taxAmount,
		TaxRatePercent: taxRatePercent,
		TaxAmount:      taxAmount,
		Total:          total,
		PaymentMethod:  from.PaymentMethod(),
		CreatedAt:      createdAt.UTC(),
	}, nil
}

// Validate checks the record's required fields.
func (i *Invoice) Validate() error {
	if i == nil {
		return errs.NewValueIsRequiredError("invoice")
	}
	if err := i.ID.Validate(); err != nil {
		return err
	}
	if i.OrderID == "" {
		return errs.NewValueIsRequiredError("order reference")
	}
	if len(i.Lines) == 0 {
		return errs.NewValueIsRequiredError("invoice lines")
	}
	return nil
}
