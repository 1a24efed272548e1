package addressrepo

import (
	"context"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/domain/model/address"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/docjson"
	"restopos/internal/pkg/errs"
)

// Repository implements ports.AddressRepository over the document store.
type Repository struct {
	store ports.DocumentStore
}

// New creates an address repository.
func New(store ports.DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetActive retrieves the deliverable addresses.
func (r *Repository) GetActive(ctx context.Context) ([]*address.Address, error) {
	docs, err := r.store.Find(ctx, docstore.CollectionAddresses, ports.Query{
		Selector: map[string]any{"type": "address", "active": true},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// SearchByStreet retrieves the addresses on one street through the
// by_street view.
func (r *Repository) SearchByStreet(ctx context.Context, street string) ([]*address.Address, error) {
	if street == "" {
		return nil, errs.NewValueIsRequiredError("street")
	}

	docs, err := docstore.ViewWithProvision(ctx, r.store,
		docstore.CollectionAddresses,
		docstore.DesignAddresses, "by_street",
		docstore.AddressViews(),
		ports.ViewOptions{Key: street},
	)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// Save persists the address with its recomputed composed form.
func (r *Repository) Save(ctx context.Context, a *address.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}

	doc, err := docjson.Encode(fromDomain(a))
	if err != nil {
		return err
	}

	res, err := r.store.Put(ctx, docstore.CollectionAddresses, doc)
	if err != nil {
		return err
	}

	a.Rev = res.Rev
	a.FullAddress = a.Compose()
	return nil
}

// SeedMany bulk-inserts addresses in one round trip, reporting how many
// documents were written.
func (r *Repository) SeedMany(ctx context.Context, addresses []*address.Address) (int, error) {
	docs := make([]ports.Document, 0, len(addresses))
	for _, a := range addresses {
		if err := a.Validate(); err != nil {
			return 0, err
		}
		doc, err := docjson.Encode(fromDomain(a))
		if err != nil {
			return 0, err
		}
		docs = append(docs, doc)
	}

	results, err := r.store.BulkPut(ctx, docstore.CollectionAddresses, docs)
	if err != nil {
		return 0, err
	}

	written := 0
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		written++
		if i < len(addresses) {
			addresses[i].Rev = res.Rev
		}
	}
	return written, nil
}

func decodeAll(docs []ports.Document) ([]*address.Address, error) {
	addresses := make([]*address.Address, 0, len(docs))
	for _, doc := range docs {
		var dto addressDTO
		if err := docjson.Decode(doc, &dto); err != nil {
			return nil, err
		}
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}

var _ ports.AddressRepository = (*Repository)(nil)
