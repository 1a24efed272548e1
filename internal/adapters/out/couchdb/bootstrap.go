package couchdb

import (
	"context"
	"errors"
	"log/slog"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/adapters/out/docstore/addressrepo"
	"restopos/internal/adapters/out/docstore/settingsrepo"
	"restopos/internal/core/domain/model/address"
	"restopos/internal/core/domain/model/settings"
	"restopos/internal/pkg/errs"
)

type mangoIndex struct {
	collection string
	name       string
	fields     []string
}

func mangoIndexes() []mangoIndex {
	return []mangoIndex{
		{docstore.CollectionMenu, "type-order-index", []string{"type", "order"}},
		{docstore.CollectionTables, "table-order-index", []string{"type", "order"}},
		{docstore.CollectionOrders, "order-status-date-index", []string{"status", "createdAt"}},
		{docstore.CollectionOrders, "order-type-date-index", []string{"type", "createdAt"}},
		{docstore.CollectionOrders, "order-date-index", []string{"createdAt"}},
		{docstore.CollectionOrders, "order-table-status-index", []string{"tableId", "status"}},
		{docstore.CollectionInvoices, "invoice-date-index", []string{"createdAt"}},
		{docstore.CollectionReservations, "reservation-date-time-index", []string{"date", "time"}},
		{docstore.CollectionCustomers, "customer-phone-index", []string{"phone"}},
		{docstore.CollectionCustomers, "customer-name-index", []string{"name"}},
		{docstore.CollectionCustomers, "customer-lastorder-index", []string{"lastOrderDate"}},
		{docstore.CollectionArchivedOrders, "archived-order-date-index", []string{"type", "archivedAt"}},
		{docstore.CollectionArchivedOrders, "archived-order-table-index", []string{"tableId"}},
		{docstore.CollectionCouriers, "courier-status-index", []string{"status"}},
	}
}

// Bootstrap prepares a fresh CouchDB server for the application: it creates
// every collection, the Mango indexes the repositories query through, the
// design documents of the named views, and seeds the default settings
// document when none exists yet. Bootstrap is idempotent and safe to run on
// every startup.
func Bootstrap(ctx context.Context, store *Store, logger *slog.Logger) error {
	for _, collection := range docstore.Collections() {
		if err := store.EnsureCollection(ctx, collection); err != nil {
			return err
		}
	}
	logger.Info("collections ready", "count", len(docstore.Collections()))

	for _, idx := range mangoIndexes() {
		if err := store.EnsureIndex(ctx, idx.collection, idx.name, idx.fields); err != nil {
			return err
		}
	}

	designs := []struct {
		collection string
		design     string
		views      map[string]string
	}{
		{docstore.CollectionCustomers, docstore.DesignCustomers, docstore.CustomerViews()},
		{docstore.CollectionArchivedOrders, docstore.DesignArchivedOrders, docstore.ArchivedOrderViews()},
		{docstore.CollectionCouriers, docstore.DesignCouriers, docstore.CourierViews()},
		{docstore.CollectionAddresses, docstore.DesignAddresses, docstore.AddressViews()},
	}
	for _, d := range designs {
		if err := store.EnsureView(ctx, d.collection, d.design, d.views); err != nil {
			return err
		}
	}

	if err := seedSettings(ctx, store, logger); err != nil {
		return err
	}
	return seedAddresses(ctx, store, logger)
}

func seedSettings(ctx context.Context, store *Store, logger *slog.Logger) error {
	repo := settingsrepo.New(store)

	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err := repo.Save(ctx, settings.Default()); err != nil {
		// A concurrent instance may have seeded it first.
		if errors.Is(err, errs.ErrConflict) {
			return nil
		}
		return err
	}
	logger.Info("seeded default settings document")
	return nil
}

func seedAddresses(ctx context.Context, store *Store, logger *slog.Logger) error {
	repo := addressrepo.New(store)

	existing, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	written, err := repo.SeedMany(ctx, address.Defaults())
	if err != nil {
		return err
	}
	logger.Info("seeded delivery addresses", "count", written)
	return nil
}
