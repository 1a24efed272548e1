// Package ports defines the contracts between the application core and its
// adapters: the document-store port and the per-entity repository interfaces.
// These interfaces establish dependency inversion so the lifecycle coordinator
// can be tested against in-memory fakes and mocks.
package ports

import "context"

// Document is a schemaless record as stored in a collection. Every document
// carries its key under "_id" and, once persisted, its revision token under
// "_rev". A "type" discriminator field distinguishes entity kinds that share
// a collection with design documents.
type Document map[string]any

// ID returns the document key, or "" when the document has none yet.
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}

// Rev returns the revision token, or "" for a document never persisted.
func (d Document) Rev() string {
	rev, _ := d["_rev"].(string)
	return rev
}

// PutResult reports the outcome of a successful write.
type PutResult struct {
	ID  string
	Rev string
}

// Query is a selector-based ad-hoc query over indexed fields, mirroring the
// store's native find primitive.
type Query struct {
	Selector map[string]any
	Sort     []map[string]string
	Limit    int
}

// ViewOptions narrows a named-view query.
type ViewOptions struct {
	// Key filters rows to an exact emitted key. Empty means all rows.
	Key string

	// Descending reverses the key order.
	Descending bool

	// Limit caps the number of returned rows, 0 means no cap.
	Limit int
}

// BulkResult reports the per-document outcome of a bulk write.
type BulkResult struct {
	ID  string
	Rev string
	Err error
}

// DocumentStore is the generic persistence port over named collections.
// All operations are network calls bounded by a request timeout; transport
// failure or timeout surfaces as errs.ErrUnavailable, a missing document,
// view, or collection as errs.ErrObjectNotFound, and a write with a stale
// revision token as errs.ErrConflict. Callers must not assume success.
type DocumentStore interface {
	// Get retrieves a single document by key.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Put creates the document when its key is unknown to the collection and
	// updates it when the supplied "_rev" matches the stored revision.
	// A create with a colliding key or an update with a stale revision fails
	// with errs.ErrConflict.
	Put(ctx context.Context, collection string, doc Document) (PutResult, error)

	// Delete removes a document; the supplied revision must be current.
	Delete(ctx context.Context, collection, id, rev string) error

	// Find runs an ad-hoc selector query over indexed fields.
	Find(ctx context.Context, collection string, query Query) ([]Document, error)

	// View queries a named map-view of a design document, returning the
	// emitted documents. An absent design document or view fails with
	// errs.ErrObjectNotFound so repositories can provision it on demand.
	View(ctx context.Context, collection, design, view string, opts ViewOptions) ([]Document, error)

	// BulkPut inserts or updates documents in one round trip, reporting
	// per-document success or failure.
	BulkPut(ctx context.Context, collection string, docs []Document) ([]BulkResult, error)

	// EnsureCollection creates the collection when it does not exist yet.
	EnsureCollection(ctx context.Context, collection string) error

	// EnsureView creates or completes a design document with the given
	// view-name-to-map-function definitions.
	EnsureView(ctx context.Context, collection, design string, views map[string]string) error
}
