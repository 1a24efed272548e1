package queries

import (
	"errors"

	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/guard"
)

var ErrGetOrdersByTypeQueryIsNotConstructed = errors.New(
	"GetOrdersByTypeQuery must be created via NewGetOrdersByTypeQuery constructor",
)

// GetOrdersByTypeQuery retrieves the orders of one fulfilment type.
type GetOrdersByTypeQuery struct {
	orderType order.Type

	guard guard.ConstructorGuard
}

// NewGetOrdersByTypeQuery creates a query for the orders of the given
// fulfilment type.
func NewGetOrdersByTypeQuery(orderType order.Type) (GetOrdersByTypeQuery, error) {
	if err := orderType.Validate(); err != nil {
		return GetOrdersByTypeQuery{}, err
	}
	return GetOrdersByTypeQuery{
		orderType: orderType,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderType returns the queried fulfilment type.
func (q GetOrdersByTypeQuery) OrderType() order.Type { return q.orderType }

// Validate ensures the query was created through the constructor.
func (q GetOrdersByTypeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByTypeQueryIsNotConstructed)
}
