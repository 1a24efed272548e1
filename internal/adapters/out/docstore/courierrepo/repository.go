package courierrepo

import (
	"context"
	"time"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/docjson"
)

// Repository implements ports.CourierRepository over the document store.
// Status listings go through the by_status view, provisioned on first use.
type Repository struct {
	store ports.DocumentStore
}

// New creates a courier repository.
func New(store ports.DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetAll retrieves every courier.
func (r *Repository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	docs, err := r.store.Find(ctx, docstore.CollectionCouriers, ports.Query{
		Selector: map[string]any{"type": "courier"},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByID retrieves one courier by key.
func (r *Repository) GetByID(ctx context.Context, id kernel.DocID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, docstore.CollectionCouriers, id.String())
	if err != nil {
		return nil, err
	}
	return decode(doc)
}

// GetByStatus retrieves the couriers in one duty status.
func (r *Repository) GetByStatus(ctx context.Context, status courier.Status) ([]*courier.Courier, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	docs, err := docstore.ViewWithProvision(ctx, r.store,
		docstore.CollectionCouriers,
		docstore.DesignCouriers, "by_status",
		docstore.CourierViews(),
		ports.ViewOptions{Key: string(status)},
	)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// Save persists the courier, bumping its last-modification timestamp.
func (r *Repository) Save(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.Touch(time.Now())
	doc, err := docjson.Encode(fromDomain(c))
	if err != nil {
		return err
	}

	res, err := r.store.Put(ctx, docstore.CollectionCouriers, doc)
	if err != nil {
		return err
	}

	c.SetRev(res.Rev)
	return nil
}

// Delete removes the courier document.
func (r *Repository) Delete(ctx context.Context, id kernel.DocID, rev string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.store.Delete(ctx, docstore.CollectionCouriers, id.String(), rev)
}

func decode(doc ports.Document) (*courier.Courier, error) {
	var dto courierDTO
	if err := docjson.Decode(doc, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func decodeAll(docs []ports.Document) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, 0, len(docs))
	for _, doc := range docs {
		c, err := decode(doc)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}

var _ ports.CourierRepository = (*Repository)(nil)
