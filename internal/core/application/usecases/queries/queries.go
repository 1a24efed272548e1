// Package queries contains the read operations of the application core.
// Implements the Query pattern: each read is a constructor-guarded query
// struct plus a handler over the repositories, returning read models.
//
// Listing handlers can be configured to degrade to an empty result when the
// store is unreachable, so a dashboard keeps rendering through an outage.
// The degradation never applies to writes or single-document reads.
package queries

import (
	"errors"
	"log/slog"

	"restopos/internal/pkg/errs"
)

// ListingPolicy controls how listing handlers respond to an unreachable
// store. With EmptyOnUnavailable set, the handler logs a warning and
// returns an empty listing instead of the error.
type ListingPolicy struct {
	EmptyOnUnavailable bool
	Logger             *slog.Logger
}

// suppress reports whether the error should collapse to an empty listing,
// logging the degradation when it does.
func (p ListingPolicy) suppress(err error, operation string) bool {
	if !p.EmptyOnUnavailable || !errors.Is(err, errs.ErrUnavailable) {
		return false
	}
	if p.Logger != nil {
		p.Logger.Warn("store unreachable, returning empty listing",
			"operation", operation, "error", err)
	}
	return true
}
