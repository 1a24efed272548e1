package customerrepo

import (
	"context"
	"errors"
	"time"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/domain/model/customer"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/docjson"
	"restopos/internal/pkg/errs"
)

// Repository implements ports.CustomerRepository over the document store.
type Repository struct {
	store ports.DocumentStore
}

// New creates a customer repository.
func New(store ports.DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetAll retrieves every customer.
func (r *Repository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	docs, err := r.store.Find(ctx, docstore.CollectionCustomers, ports.Query{
		Selector: map[string]any{"type": "customer"},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByID retrieves one customer by key.
func (r *Repository) GetByID(ctx context.Context, id kernel.DocID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, docstore.CollectionCustomers, id.String())
	if err != nil {
		return nil, err
	}
	return decode(doc)
}

// GetByPhone retrieves the customer owning a phone number through the
// by_phone view.
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("customer phone")
	}

	docs, err := docstore.ViewWithProvision(ctx, r.store,
		docstore.CollectionCustomers,
		docstore.DesignCustomers, "by_phone",
		docstore.CustomerViews(),
		ports.ViewOptions{Key: phone, Limit: 1},
	)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errs.NewObjectNotFoundError("customer with phone", phone)
	}
	return decode(docs[0])
}

// Save persists the customer after checking that the phone number is not
// already owned by a different customer.
func (r *Repository) Save(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	owner, err := r.GetByPhone(ctx, c.Phone)
	switch {
	case err == nil && !owner.ID.IsEqual(c.ID):
		return errs.NewValidationError("phone", "already used by another customer")
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	c.UpdatedAt = time.Now().UTC()
	doc, err := docjson.Encode(fromDomain(c))
	if err != nil {
		return err
	}

	res, err := r.store.Put(ctx, docstore.CollectionCustomers, doc)
	if err != nil {
		return err
	}

	c.Rev = res.Rev
	return nil
}

// Delete removes the customer document.
func (r *Repository) Delete(ctx context.Context, id kernel.DocID, rev string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.store.Delete(ctx, docstore.CollectionCustomers, id.String(), rev)
}

func decode(doc ports.Document) (*customer.Customer, error) {
	var dto customerDTO
	if err := docjson.Decode(doc, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func decodeAll(docs []ports.Document) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0, len(docs))
	for _, doc := range docs {
		c, err := decode(doc)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

var _ ports.CustomerRepository = (*Repository)(nil)
