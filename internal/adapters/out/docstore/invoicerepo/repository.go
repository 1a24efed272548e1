package invoicerepo

import (
	"context"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/domain/model/invoice"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/docjson"
)

// Repository implements ports.InvoiceRepository over the document store.
type Repository struct {
	store ports.DocumentStore
}

// New creates an invoice repository.
func New(store ports.DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetRecent retrieves invoices, most recent first.
func (r *Repository) GetRecent(ctx context.Context, limit int) ([]*invoice.Invoice, error) {
	docs, err := r.store.Find(ctx, docstore.CollectionInvoices, ports.Query{
		Selector: map[string]any{"type": "invoice"},
		Sort:     []map[string]string{{"createdAt": "desc"}},
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(docs)
}

// GetByID retrieves one invoice by key.
func (r *Repository) GetByID(ctx context.Context, id kernel.DocID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, docstore.CollectionInvoices, id.String())
	if err != nil {
		return nil, err
	}
	return decode(doc)
}

// Save persists the invoice.
func (r *Repository) Save(ctx context.Context, inv *invoice.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	doc, err := docjson.Encode(fromDomain(inv))
	if err != nil {
		return err
	}

	res, err := r.store.Put(ctx, docstore.CollectionInvoices, doc)
	if err != nil {
		return err
	}

	inv.Rev = res.Rev
	return nil
}

// Delete removes the invoice document.
func (r *Repository) Delete(ctx context.Context, id kernel.DocID, rev string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.store.Delete(ctx, docstore.CollectionInvoices, id.String(), rev)
}

func decode(doc ports.Document) (*invoice.Invoice, error) {
	var dto invoiceDTO
	if err := docjson.Decode(doc, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func decodeAll(docs []ports.Document) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0, len(docs))
	for _, doc := range docs {
		inv, err := decode(doc)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

var _ ports.InvoiceRepository = (*Repository)(nil)
