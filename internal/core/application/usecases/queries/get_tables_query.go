package queries

import (
	"errors"

	"restopos/internal/pkg/guard"
)

var ErrGetTablesQueryIsNotConstructed = errors.New(
	"GetTablesQuery must be created via NewGetTablesQuery constructor",
)

// GetTablesQuery retrieves every table for the floor plan.
type GetTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTablesQuery creates a query for the table listing.
func NewGetTablesQuery() GetTablesQuery {
	return GetTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetTablesQueryIsNotConstructed)
}
