// Package kernel contains shared value objects used across the domain model.
package kernel

import (
	"strings"

	"github.com/google/uuid"

	"restopos/internal/pkg/errs"
)

// ErrDocIDIsNotConstructed indicates a zero-value DocID that bypassed the
// constructor functions.
var ErrDocIDIsNotConstructed = errs.NewValueIsRequiredError(
	"DocID must be created via NewDocID or DocIDFromString")

// DocID is the unique key of a document in a collection. New keys are random
// and prefixed by entity kind ("order_", "table_", ...), replacing the
// wall-clock key generation the store's documents historically used. DocID is
// immutable and safe for concurrent use.
//
// Example:
//
//	id := kernel.NewDocID("order")
//	fmt.Println(id.String()) // e.g. "order_550e8400-e29b-41d4-a716-446655440000"
type DocID struct {
	value string
}

// NewDocID generates a new unique document key with the given entity prefix.
// An empty prefix yields a bare random key.
func NewDocID(prefix string) DocID {
	raw := uuid.NewString()
	if prefix == "" {
		return DocID{value: raw}
	}
	return DocID{value: prefix + "_" + raw}
}

// DocIDFromString reconstructs a DocID from its persisted form.
// Returns an error for an empty or blank key.
func DocIDFromString(s string) (DocID, error) {
	if strings.TrimSpace(s) == "" {
		return DocID{}, errs.NewValueIsRequiredError("document key")
	}
	return DocID{value: s}, nil
}

// String returns the key in its persisted form.
func (d DocID) String() string {
	return d.value
}

// IsEqual compares two keys by value.
func (d DocID) IsEqual(other DocID) bool {
	return d.value == other.value
}

// IsZero reports whether the DocID is the zero value, i.e. the document has
// not been assigned a key yet.
func (d DocID) IsZero() bool {
	return d.value == ""
}

// Validate returns ErrDocIDIsNotConstructed for a zero-value DocID.
func (d DocID) Validate() error {
	if d.value == "" {
		return ErrDocIDIsNotConstructed
	}
	return nil
}
