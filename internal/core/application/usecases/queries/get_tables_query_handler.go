package queries

import (
	"context"

	"restopos/internal/core/ports"
)

// GetTablesQueryHandler lists the tables with their occupancy and
// reservations.
type GetTablesQueryHandler struct {
	tableRepo ports.TableRepository
	policy    ListingPolicy
}

// NewGetTablesQueryHandler creates a handler for the table listing.
func NewGetTablesQueryHandler(tableRepo ports.TableRepository, policy ListingPolicy) GetTablesQueryHandler {
	return GetTablesQueryHandler{tableRepo: tableRepo, policy: policy}
}

// Handle executes the query.
func (h GetTablesQueryHandler) Handle(ctx context.Context, query GetTablesQuery) ([]TableResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables, err := h.tableRepo.GetAll(ctx)
	if err != nil {
		if h.policy.suppress(err, "get tables") {
			return []TableResponse{}, nil
		}
		return nil, err
	}
	return tableResponses(tables), nil
}
