// Package docjson converts between typed persistence DTOs and the schemaless
// ports.Document maps the store adapters operate on. Conversion goes through
// JSON so the field names and value types are exactly what the document
// store would persist.
package docjson

import (
	"encoding/json"

	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
)

// Encode converts a DTO into a Document.
func Encode(v any) (ports.Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("document", err)
	}

	var doc ports.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("document", err)
	}
	return doc, nil
}

// Decode converts a Document into a DTO.
func Decode(doc ports.Document, dest any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("document", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("document", err)
	}
	return nil
}
