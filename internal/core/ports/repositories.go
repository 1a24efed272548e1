package ports

import (
	"context"

	"restopos/internal/core/domain/model/address"
	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/customer"
	"restopos/internal/core/domain/model/invoice"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/settings"
	"restopos/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for table aggregates.
// Save keeps the legacy seats/capacity synonym fields mirrored in the
// persisted document.
type TableRepository interface {
	GetAll(ctx context.Context) ([]*table.Table, error)
	GetByID(ctx context.Context, id kernel.DocID) (*table.Table, error)
	GetByStatus(ctx context.Context, status table.Status) ([]*table.Table, error)

	// Save creates the table when it has no revision yet and updates it
	// otherwise; the caller must have fetched the latest revision or the
	// write fails with errs.ErrConflict. On success the aggregate carries
	// the new revision.
	Save(ctx context.Context, tbl *table.Table) error

	Delete(ctx context.Context, id kernel.DocID, rev string) error
}

// OrderRepository defines the persistence contract for live orders.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]*order.Order, error)
	GetByID(ctx context.Context, id kernel.DocID) (*order.Order, error)

	// GetActive retrieves the open orders: new, in-progress, ready, and
	// restored active orders.
	GetActive(ctx context.Context) ([]*order.Order, error)

	GetByType(ctx context.Context, orderType order.Type) ([]*order.Order, error)

	// GetActiveByTable retrieves the open order referencing a table, or
	// errs.ErrObjectNotFound when the table has none.
	GetActiveByTable(ctx context.Context, tableID kernel.DocID) (*order.Order, error)

	// GetTemporaryByTable retrieves the unconfirmed cart for a table, or
	// errs.ErrObjectNotFound when there is none.
	GetTemporaryByTable(ctx context.Context, tableID kernel.DocID) (*order.Order, error)

	Save(ctx context.Context, o *order.Order) error
	Delete(ctx context.Context, id kernel.DocID, rev string) error
}

// ArchivedOrderRepository defines the persistence contract for the archive
// collection. Documents here are mutually exclusive with the live order
// collection for the same logical order.
type ArchivedOrderRepository interface {
	// GetAll retrieves archived orders, most recently archived first.
	// A non-positive limit returns all of them.
	GetAll(ctx context.Context, limit int) ([]*order.ArchivedOrder, error)

	GetByID(ctx context.Context, id kernel.DocID) (*order.ArchivedOrder, error)
	Save(ctx context.Context, a *order.ArchivedOrder) error
	Delete(ctx context.Context, id kernel.DocID, rev string) error
}

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	GetAll(ctx context.Context) ([]*courier.Courier, error)
	GetByID(ctx context.Context, id kernel.DocID) (*courier.Courier, error)
	GetByStatus(ctx context.Context, status courier.Status) ([]*courier.Courier, error)
	Save(ctx context.Context, c *courier.Courier) error
	Delete(ctx context.Context, id kernel.DocID, rev string) error
}

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]*customer.Customer, error)
	GetByID(ctx context.Context, id kernel.DocID) (*customer.Customer, error)

	// GetByPhone retrieves the customer owning a phone number, or
	// errs.ErrObjectNotFound when the number is unused.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)

	// Save rejects a phone number already used by a different customer with
	// errs.ErrValidationFailed before writing anything. The check is a
	// lookup-before-write, not a store constraint.
	Save(ctx context.Context, c *customer.Customer) error

	Delete(ctx context.Context, id kernel.DocID, rev string) error
}

// InvoiceRepository defines the persistence contract for invoices.
type InvoiceRepository interface {
	// GetRecent retrieves invoices, most recent first. A non-positive limit
	// returns all of them.
	GetRecent(ctx context.Context, limit int) ([]*invoice.Invoice, error)

	GetByID(ctx context.Context, id kernel.DocID) (*invoice.Invoice, error)
	Save(ctx context.Context, inv *invoice.Invoice) error
	Delete(ctx context.Context, id kernel.DocID, rev string) error
}

// SettingsRepository defines the persistence contract for the single
// settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*settings.Settings, error)
	Save(ctx context.Context, s *settings.Settings) error
}

// AddressRepository defines the persistence contract for delivery addresses.
type AddressRepository interface {
	GetActive(ctx context.Context) ([]*address.Address, error)
	SearchByStreet(ctx context.Context, street string) ([]*address.Address, error)
	Save(ctx context.Context, a *address.Address) error

	// SeedMany bulk-inserts addresses in one round trip, reporting how many
	// documents were written.
	SeedMany(ctx context.Context, addresses []*address.Address) (int, error)
}
