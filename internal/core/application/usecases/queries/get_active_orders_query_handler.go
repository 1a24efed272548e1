package queries

import (
	"context"

	"restopos/internal/core/ports"
)

// GetActiveOrdersQueryHandler lists the open orders for the live board.
type GetActiveOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
	policy    ListingPolicy
}

// NewGetActiveOrdersQueryHandler creates a handler for the open-orders
// listing.
func NewGetActiveOrdersQueryHandler(orderRepo ports.OrderRepository, policy ListingPolicy) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orderRepo: orderRepo, policy: policy}
}

// Handle executes the query.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetActive(ctx)
	if err != nil {
		if h.policy.suppress(err, "get active orders") {
			return []OrderResponse{}, nil
		}
		return nil, err
	}
	return orderResponses(orders), nil
}
