package archiverepo

import (
	"context"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/docjson"
)

// Repository implements ports.ArchivedOrderRepository over the document
// store. Listings go through the by_date view, provisioned on first use.
type Repository struct {
	store ports.DocumentStore
}

// New creates an archived-order repository.
func New(store ports.DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetAll retrieves archived orders, most recently archived first.
func (r *Repository) GetAll(ctx context.Context, limit int) ([]*order.ArchivedOrder, error) {
	docs, err := docstore.ViewWithProvision(ctx, r.store,
		docstore.CollectionArchivedOrders,
		docstore.DesignArchivedOrders, "by_date",
		docstore.ArchivedOrderViews(),
		ports.ViewOptions{Descending: true, Limit: limit},
	)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByTable retrieves the archived orders of one table, most recent first.
func (r *Repository) GetByTable(ctx context.Context, tableID kernel.DocID) ([]*order.ArchivedOrder, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	docs, err := docstore.ViewWithProvision(ctx, r.store,
		docstore.CollectionArchivedOrders,
		docstore.DesignArchivedOrders, "by_table",
		docstore.ArchivedOrderViews(),
		ports.ViewOptions{Key: tableID.String()},
	)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByID retrieves one archived order by key.
func (r *Repository) GetByID(ctx context.Context, id kernel.DocID) (*order.ArchivedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, docstore.CollectionArchivedOrders, id.String())
	if err != nil {
		return nil, err
	}
	return decode(doc)
}

// Save persists the archived order.
func (r *Repository) Save(ctx context.Context, a *order.ArchivedOrder) error {
	if err := a.Validate(); err != nil {
		return err
	}

	doc, err := docjson.Encode(fromDomain(a))
	if err != nil {
		return err
	}

	res, err := r.store.Put(ctx, docstore.CollectionArchivedOrders, doc)
	if err != nil {
		return err
	}

	a.SetRev(res.Rev)
	return nil
}

// Delete removes the archive document.
func (r *Repository) Delete(ctx context.Context, id kernel.DocID, rev string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.store.Delete(ctx, docstore.CollectionArchivedOrders, id.String(), rev)
}

func decode(doc ports.Document) (*order.ArchivedOrder, error) {
	var dto archivedOrderDTO
	if err := docjson.Decode(doc, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func decodeAll(docs []ports.Document) ([]*order.ArchivedOrder, error) {
	archived := make([]*order.ArchivedOrder, 0, len(docs))
	for _, doc := range docs {
		a, err := decode(doc)
		if err != nil {
			return nil, err
		}
		archived = append(archived, a)
	}
	return archived, nil
}

var _ ports.ArchivedOrderRepository = (*Repository)(nil)
