package queries

import (
	"context"

	"restopos/internal/core/ports"
)

// GetOrdersByTypeQueryHandler lists the orders of one fulfilment type.
type GetOrdersByTypeQueryHandler struct {
	orderRepo ports.OrderRepository
	policy    ListingPolicy
}

// NewGetOrdersByTypeQueryHandler creates a handler for the per-type
// order listing.
func NewGetOrdersByTypeQueryHandler(orderRepo ports.OrderRepository, policy ListingPolicy) GetOrdersByTypeQueryHandler {
	return GetOrdersByTypeQueryHandler{orderRepo: orderRepo, policy: policy}
}

// Handle executes the query.
func (h GetOrdersByTypeQueryHandler) Handle(ctx context.Context, query GetOrdersByTypeQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetByType(ctx, query.OrderType())
	if err != nil {
		if h.policy.suppress(err, "get orders by type") {
			return []OrderResponse{}, nil
		}
		return nil, err
	}
	return orderResponses(orders), nil
}
