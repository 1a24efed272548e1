package queries

import (
	"context"

	"restopos/internal/core/ports"
)

// GetCouriersByStatusQueryHandler lists the couriers in one duty status.
type GetCouriersByStatusQueryHandler struct {
	courierRepo ports.CourierRepository
	policy      ListingPolicy
}

// NewGetCouriersByStatusQueryHandler creates a handler for the per-status
// courier listing.
func NewGetCouriersByStatusQueryHandler(courierRepo ports.CourierRepository, policy ListingPolicy) GetCouriersByStatusQueryHandler {
	return GetCouriersByStatusQueryHandler{courierRepo: courierRepo, policy: policy}
}

// Handle executes the query.
func (h GetCouriersByStatusQueryHandler) Handle(ctx context.Context, query GetCouriersByStatusQuery) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers, err := h.courierRepo.GetByStatus(ctx, query.Status())
	if err != nil {
		if h.policy.suppress(err, "get couriers by status") {
			return []CourierResponse{}, nil
		}
		return nil, err
	}
	return courierResponses(couriers), nil
}
