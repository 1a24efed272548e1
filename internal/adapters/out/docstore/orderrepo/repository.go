package orderrepo

import (
	"context"
	"time"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/docjson"
	"restopos/internal/pkg/errs"
)

// Repository implements ports.OrderRepository over the document store.
type Repository struct {
	store ports.DocumentStore
}

// New creates an order repository.
func New(store ports.DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetAll retrieves every live order, temporary carts included.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	docs, err := r.store.Find(ctx, docstore.CollectionOrders, ports.Query{
		Selector: map[string]any{"type": "order"},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByID retrieves one order by key.
func (r *Repository) GetByID(ctx context.Context, id kernel.DocID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, docstore.CollectionOrders, id.String())
	if err != nil {
		return nil, err
	}
	return decode(doc)
}

// GetActive retrieves the open orders.
func (r *Repository) GetActive(ctx context.Context) ([]*order.Order, error) {
	docs, err := r.store.Find(ctx, docstore.CollectionOrders, ports.Query{
		Selector: map[string]any{
			"type":   "order",
			"status": map[string]any{"$in": openStatuses()},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByType retrieves the orders of one fulfilment type.
func (r *Repository) GetByType(ctx context.Context, orderType order.Type) ([]*order.Order, error) {
	if err := orderType.Validate(); err != nil {
		return nil, err
	}

	docs, err := r.store.Find(ctx, docstore.CollectionOrders, ports.Query{
		Selector: map[string]any{"type": "order", "orderType": string(orderType)},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetActiveByTable retrieves the open order referencing a table.
func (r *Repository) GetActiveByTable(ctx context.Context, tableID kernel.DocID) (*order.Order, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	docs, err := r.store.Find(ctx, docstore.CollectionOrders, ports.Query{
		Selector: map[string]any{
			"type":    "order",
			"tableId": tableID.String(),
			"status":  map[string]any{"$in": openStatuses()},
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errs.NewObjectNotFoundError("active order for table", tableID.String())
	}
	return decode(docs[0])
}

// GetTemporaryByTable retrieves the unconfirmed cart for a table.
func (r *Repository) GetTemporaryByTable(ctx context.Context, tableID kernel.DocID) (*order.Order, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	docs, err := r.store.Find(ctx, docstore.CollectionOrders, ports.Query{
		Selector: map[string]any{
			"type":    "order",
			"tableId": tableID.String(),
			"status":  string(order.Temporary),
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errs.NewObjectNotFoundError("temporary order for table", tableID.String())
	}
	return decode(docs[0])
}

// Save persists the order, bumping its last-modification timestamp.
func (r *Repository) Save(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.Touch(time.Now())
	doc, err := docjson.Encode(fromDomain(o))
	if err != nil {
		return err
	}

	res, err := r.store.Put(ctx, docstore.CollectionOrders, doc)
	if err != nil {
		return err
	}

	o.SetRev(res.Rev)
	return nil
}

// Delete removes the order document.
func (r *Repository) Delete(ctx context.Context, id kernel.DocID, rev string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.store.Delete(ctx, docstore.CollectionOrders, id.String(), rev)
}

func decode(doc ports.Document) (*order.Order, error) {
	var dto orderDTO
	if err := docjson.Decode(doc, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func decodeAll(docs []ports.Document) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(docs))
	for _, doc := range docs {
		o, err := decode(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

var _ ports.OrderRepository = (*Repository)(nil)
