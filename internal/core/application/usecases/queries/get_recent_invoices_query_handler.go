package queries

import (
	"context"

	"restopos/internal/core/ports"
)

// GetRecentInvoicesQueryHandler lists invoices, newest first.
type GetRecentInvoicesQueryHandler struct {
	invoiceRepo ports.InvoiceRepository
	policy      ListingPolicy
}

// NewGetRecentInvoicesQueryHandler creates a handler for the invoice
// listing.
func NewGetRecentInvoicesQueryHandler(invoiceRepo ports.InvoiceRepository, policy ListingPolicy) GetRecentInvoicesQueryHandler {
	return GetRecentInvoicesQueryHandler{invoiceRepo: invoiceRepo, policy: policy}
}

// Handle executes the query.
func (h GetRecentInvoicesQueryHandler) Handle(ctx context.Context, query GetRecentInvoicesQuery) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices, err := h.invoiceRepo.GetRecent(ctx, query.Limit())
	if err != nil {
		if h.policy.suppress(err, "get recent invoices") {
			return []InvoiceResponse{}, nil
		}
		return nil, err
	}
	return invoiceResponses(invoices), nil
}
