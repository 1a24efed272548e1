package tablerepo

import (
	"context"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/docjson"
)

// Repository implements ports.TableRepository over the document store.
type Repository struct {
	store ports.DocumentStore
}

// New creates a table repository.
func New(store ports.DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetAll retrieves every table.
func (r *Repository) GetAll(ctx context.Context) ([]*table.Table, error) {
	docs, err := r.store.Find(ctx, docstore.CollectionTables, ports.Query{
		Selector: map[string]any{"type": "table"},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByID retrieves one table by key.
func (r *Repository) GetByID(ctx context.Context, id kernel.DocID) (*table.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, docstore.CollectionTables, id.String())
	if err != nil {
		return nil, err
	}
	return decode(doc)
}

// GetByStatus retrieves the tables in one occupancy status.
func (r *Repository) GetByStatus(ctx context.Context, status table.Status) ([]*table.Table, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	docs, err := r.store.Find(ctx, docstore.CollectionTables, ports.Query{
		Selector: map[string]any{"type": "table", "status": string(status)},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// Save persists the table, mirroring the seats/capacity synonym fields.
func (r *Repository) Save(ctx context.Context, tbl *table.Table) error {
	if err := tbl.Validate(); err != nil {
		return err
	}

	doc, err := docjson.Encode(fromDomain(tbl))
	if err != nil {
		return err
	}

	res, err := r.store.Put(ctx, docstore.CollectionTables, doc)
	if err != nil {
		return err
	}

	tbl.SetRev(res.Rev)
	return nil
}

// Delete removes the table document.
func (r *Repository) Delete(ctx context.Context, id kernel.DocID, rev string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.store.Delete(ctx, docstore.CollectionTables, id.String(), rev)
}

func decode(doc ports.Document) (*table.Table, error) {
	var dto tableDTO
	if err := docjson.Decode(doc, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func decodeAll(docs []ports.Document) ([]*table.Table, error) {
	tables := make([]*table.Table, 0, len(docs))
	for _, doc := range docs {
		tbl, err := decode(doc)
		if err != nil {
			return nil, err
		}
		tables = append(tables, tbl)
	}
	return tables, nil
}

var _ ports.TableRepository = (*Repository)(nil)
