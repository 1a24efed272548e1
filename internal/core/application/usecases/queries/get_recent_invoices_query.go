package queries

import (
	"errors"

	"restopos/internal/pkg/guard"
)

var ErrGetRecentInvoicesQueryIsNotConstructed = errors.New(
	"GetRecentInvoicesQuery must be created via NewGetRecentInvoicesQuery constructor",
)

// GetRecentInvoicesQuery retrieves invoices, most recent first. A
// non-positive limit returns all of them.
type GetRecentInvoicesQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentInvoicesQuery creates a query for the invoice listing.
func NewGetRecentInvoicesQuery(limit int) GetRecentInvoicesQuery {
	return GetRecentInvoicesQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Limit returns the row cap, non-positive for no cap.
func (q GetRecentInvoicesQuery) Limit() int { return q.limit }

// Validate ensures the query was created through the constructor.
func (q GetRecentInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentInvoicesQueryIsNotConstructed)
}
