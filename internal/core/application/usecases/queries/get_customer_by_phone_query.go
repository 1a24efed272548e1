package queries

import (
	"errors"

	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrGetCustomerByPhoneQueryIsNotConstructed = errors.New(
	"GetCustomerByPhoneQuery must be created via NewGetCustomerByPhoneQuery constructor",
)

// GetCustomerByPhoneQuery retrieves the customer owning a phone number,
// the lookup behind caller identification on incoming orders.
type GetCustomerByPhoneQuery struct {
	phone string

	guard guard.ConstructorGuard
}

// NewGetCustomerByPhoneQuery creates a query for the customer with the
// given phone number.
func NewGetCustomerByPhoneQuery(phone string) (GetCustomerByPhoneQuery, error) {
	if phone == "" {
		return GetCustomerByPhoneQuery{}, errs.NewValueIsRequiredError("customer phone")
	}
	return GetCustomerByPhoneQuery{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Phone returns the queried phone number.
func (q GetCustomerByPhoneQuery) Phone() string { return q.phone }

// Validate ensures the query was created through the constructor.
func (q GetCustomerByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByPhoneQueryIsNotConstructed)
}
