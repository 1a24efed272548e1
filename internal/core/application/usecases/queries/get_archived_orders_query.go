package queries

import (
	"errors"

	"restopos/internal/pkg/guard"
)

var ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
	"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
)

// GetArchivedOrdersQuery retrieves archived orders, most recently archived
// first. A non-positive limit returns all of them.
type GetArchivedOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetArchivedOrdersQuery creates a query for the archive listing.
func NewGetArchivedOrdersQuery(limit int) GetArchivedOrdersQuery {
	return GetArchivedOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Limit returns the row cap, non-positive for no cap.
func (q GetArchivedOrdersQuery) Limit() int { return q.limit }

// Validate ensures the query was created through the constructor.
func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}
