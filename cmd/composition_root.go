package cmd

import (
	"log/slog"

	relay "restopos/internal/adapters/in/http"
	"restopos/internal/adapters/out/docstore/archiverepo"
	"restopos/internal/adapters/out/docstore/courierrepo"
	"restopos/internal/adapters/out/docstore/customerrepo"
	"restopos/internal/adapters/out/docstore/invoicerepo"
	"restopos/internal/adapters/out/docstore/orderrepo"
	"restopos/internal/adapters/out/docstore/tablerepo"
	"restopos/internal/core/application/tablecache"
	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/application/usecases/queries"
	"restopos/internal/core/ports"
	"restopos/internal/jobs"
)

type CompositionRoot struct {
	config Config
	store  ports.DocumentStore
	logger *slog.Logger

	orderRepo    *orderrepo.Repository
	archiveRepo  *archiverepo.Repository
	tableRepo    *tablecache.Cache
	courierRepo  *courierrepo.Repository
	customerRepo *customerrepo.Repository
	invoiceRepo  *invoicerepo.Repository
}

func NewCompositionRoot(config Config, store ports.DocumentStore, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		store:  store,
		logger: logger,

		orderRepo:   orderrepo.New(store),
		archiveRepo: archiverepo.New(store),
		// Every table read and write goes through the cache decorator, so
		// handler writes invalidate the floor-plan snapshot themselves.
		tableRepo:    tablecache.New(tablerepo.New(store), tablecache.DefaultTTL),
		courierRepo:  courierrepo.New(store),
		customerRepo: customerrepo.New(store),
		invoiceRepo:  invoicerepo.New(store),
	}
}

func (c *CompositionRoot) listingPolicy() queries.ListingPolicy {
	return queries.ListingPolicy{
		EmptyOnUnavailable: c.config.ListEmptyOnUnavailable,
		Logger:             c.logger,
	}
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderRepo, c.tableRepo)
}

func (c *CompositionRoot) CreateUpdateItemStatusCommandHandler() commands.UpdateItemStatusCommandHandler {
	return commands.NewUpdateItemStatusCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(
		c.orderRepo, c.invoiceRepo, c.tableRepo, c.courierRepo, c.logger)
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() commands.ArchiveOrderCommandHandler {
	return commands.NewArchiveOrderCommandHandler(
		c.orderRepo, c.archiveRepo, c.tableRepo, c.courierRepo, c.logger)
}

func (c *CompositionRoot) CreateRestoreOrderCommandHandler() commands.RestoreOrderCommandHandler {
	return commands.NewRestoreOrderCommandHandler(
		c.archiveRepo, c.orderRepo, c.tableRepo, c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderRepo, c.courierRepo)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(
		c.orderRepo, c.tableRepo, c.courierRepo, c.logger)
}

func (c *CompositionRoot) CreateUpdateReservationCommandHandler() commands.UpdateReservationCommandHandler {
	return commands.NewUpdateReservationCommandHandler(c.tableRepo)
}

func (c *CompositionRoot) CreateReconcileStatusesCommandHandler() commands.ReconcileStatusesCommandHandler {
	return commands.NewReconcileStatusesCommandHandler(
		c.orderRepo, c.archiveRepo, c.tableRepo, c.courierRepo, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.orderRepo, c.listingPolicy())
}

func (c *CompositionRoot) CreateGetOrdersByTypeQueryHandler() queries.GetOrdersByTypeQueryHandler {
	return queries.NewGetOrdersByTypeQueryHandler(c.orderRepo, c.listingPolicy())
}

func (c *CompositionRoot) CreateGetArchivedOrdersQueryHandler() queries.GetArchivedOrdersQueryHandler {
	return queries.NewGetArchivedOrdersQueryHandler(c.archiveRepo, c.listingPolicy())
}

func (c *CompositionRoot) CreateGetTablesQueryHandler() queries.GetTablesQueryHandler {
	return queries.NewGetTablesQueryHandler(c.tableRepo, c.listingPolicy())
}

func (c *CompositionRoot) CreateGetCouriersByStatusQueryHandler() queries.GetCouriersByStatusQueryHandler {
	return queries.NewGetCouriersByStatusQueryHandler(c.courierRepo, c.listingPolicy())
}

func (c *CompositionRoot) CreateGetCustomerByPhoneQueryHandler() queries.GetCustomerByPhoneQueryHandler {
	return queries.NewGetCustomerByPhoneQueryHandler(c.customerRepo)
}

func (c *CompositionRoot) CreateGetRecentInvoicesQueryHandler() queries.GetRecentInvoicesQueryHandler {
	return queries.NewGetRecentInvoicesQueryHandler(c.invoiceRepo, c.listingPolicy())
}

func (c *CompositionRoot) CreateRelayServer() *relay.Server {
	return relay.NewServer(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileStatusesCommandHandler(),
		c.config.ReconcileCron,
		c.logger,
	)
}
