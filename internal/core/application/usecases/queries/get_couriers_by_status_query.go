package queries

import (
	"errors"

	"restopos/internal/core/domain/model/courier"
	"restopos/internal/pkg/guard"
)

var ErrGetCouriersByStatusQueryIsNotConstructed = errors.New(
	"GetCouriersByStatusQuery must be created via NewGetCouriersByStatusQuery constructor",
)

// GetCouriersByStatusQuery retrieves the couriers in one duty status,
// typically the available ones for dispatching.
type GetCouriersByStatusQuery struct {
	status courier.Status

	guard guard.ConstructorGuard
}

// NewGetCouriersByStatusQuery creates a query for couriers in the given
// status.
func NewGetCouriersByStatusQuery(status courier.Status) (GetCouriersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetCouriersByStatusQuery{}, err
	}
	return GetCouriersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Status returns the queried duty status.
func (q GetCouriersByStatusQuery) Status() courier.Status { return q.status }

// Validate ensures the query was created through the constructor.
func (q GetCouriersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersByStatusQueryIsNotConstructed)
}
