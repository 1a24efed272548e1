package queries

import (
	"context"

	"restopos/internal/core/ports"
)

// GetArchivedOrdersQueryHandler lists the archive, newest first.
type GetArchivedOrdersQueryHandler struct {
	archiveRepo ports.ArchivedOrderRepository
	policy      ListingPolicy
}

// NewGetArchivedOrdersQueryHandler creates a handler for the archive
// listing.
func NewGetArchivedOrdersQueryHandler(archiveRepo ports.ArchivedOrderRepository, policy ListingPolicy) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{archiveRepo: archiveRepo, policy: policy}
}

// Handle executes the query.
func (h GetArchivedOrdersQueryHandler) Handle(ctx context.Context, query GetArchivedOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	archived, err := h.archiveRepo.GetAll(ctx, query.Limit())
	if err != nil {
		if h.policy.suppress(err, "get archived orders") {
			return []OrderResponse{}, nil
		}
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(archived))
	for _, a := range archived {
		responses = append(responses, archivedOrderResponse(a))
	}
	return responses, nil
}
