// Package docstore holds the collection names and shared helpers of the
// per-entity repositories built on the document store port.
package docstore

import (
	"context"
	"errors"

	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
)

// Collection names, matching the databases the relay exposes.
const (
	CollectionMenu           = "restaurant_menu"
	CollectionTables         = "restaurant_tables"
	CollectionOrders         = "restaurant_orders"
	CollectionInvoices       = "restaurant_invoices"
	CollectionSettings       = "restaurant_settings"
	CollectionReservations   = "restaurant_reservations"
	CollectionCustomers      = "restaurant_customers"
	CollectionArchivedOrders = "restaurant_archived_orders"
	CollectionCouriers       = "restaurant_couriers"
	CollectionAddresses      = "restaurant_addresses"
)

// Collections lists every database of the system, in the order the relay
// reports them.
func Collections() []string {
	return []string{
		CollectionMenu,
		CollectionTables,
		CollectionOrders,
		CollectionInvoices,
		CollectionSettings,
		CollectionReservations,
		CollectionCustomers,
		CollectionArchivedOrders,
		CollectionCouriers,
		CollectionAddresses,
	}
}

// ViewWithProvision queries a named view and, when the view does not exist
// yet, provisions the design document and retries once. Anything beyond the
// missing view is returned as-is.
func ViewWithProvision(
	ctx context.Context,
	store ports.DocumentStore,
	collection, design, view string,
	definitions map[string]string,
	opts ports.ViewOptions,
) ([]ports.Document, error) {
	docs, err := store.View(ctx, collection, design, view, opts)
	if err == nil {
		return docs, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err := store.EnsureView(ctx, collection, design, definitions); err != nil {
		return nil, err
	}
	return store.View(ctx, collection, design, view, opts)
}
