package queries

import (
	"context"

	"restopos/internal/core/ports"
)

// GetCustomerByPhoneQueryHandler resolves a phone number to its customer.
// A point lookup, so the empty-on-unavailable policy does not apply; a
// missing number surfaces as errs.ErrObjectNotFound.
type GetCustomerByPhoneQueryHandler struct {
	customerRepo ports.CustomerRepository
}

// NewGetCustomerByPhoneQueryHandler creates a handler for the phone lookup.
func NewGetCustomerByPhoneQueryHandler(customerRepo ports.CustomerRepository) GetCustomerByPhoneQueryHandler {
	return GetCustomerByPhoneQueryHandler{customerRepo: customerRepo}
}

// Handle executes the query.
func (h GetCustomerByPhoneQueryHandler) Handle(ctx context.Context, query GetCustomerByPhoneQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	c, err := h.customerRepo.GetByPhone(ctx, query.Phone())
	if err != nil {
		return CustomerResponse{}, err
	}
	return customerResponse(c), nil
}
