package commands

import (
	"context"
	"log/slog"

	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/core/domain/services"
	"restopos/internal/core/ports"
)

// ReconcileStatusesCommandHandler runs the repair sweep. Each repair is
// independent: a failed write is logged and the sweep moves on, the next
// run picks it up again.
type ReconcileStatusesCommandHandler struct {
	orderRepo   ports.OrderRepository
	archiveRepo ports.ArchivedOrderRepository
	tableRepo   ports.TableRepository
	courierRepo ports.CourierRepository
	reconciler  services.StatusReconciler
	logger      *slog.Logger
}

// NewReconcileStatusesCommandHandler creates a handler for the repair sweep.
func NewReconcileStatusesCommandHandler(
	orderRepo ports.OrderRepository,
	archiveRepo ports.ArchivedOrderRepository,
	tableRepo ports.TableRepository,
	courierRepo ports.CourierRepository,
	logger *slog.Logger,
) ReconcileStatusesCommandHandler {
	return ReconcileStatusesCommandHandler{
		orderRepo:   orderRepo,
		archiveRepo: archiveRepo,
		tableRepo:   tableRepo,
		courierRepo: courierRepo,
		reconciler:  services.NewStatusReconciler(),
		logger:      logger,
	}
}

// Handle processes the reconciliation command: duplicates first, so the
// status repairs run against the deduplicated live set.
func (h ReconcileStatusesCommandHandler) Handle(ctx context.Context, command ReconcileStatusesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.removeDuplicates(ctx); err != nil {
		return err
	}

	openOrders, err := h.orderRepo.GetActive(ctx)
	if err != nil {
		return err
	}

	h.repairTables(ctx, openOrders)
	h.repairCouriers(ctx, openOrders)
	return nil
}

// removeDuplicates resolves the half-finished two-phase moves. A restored
// live order whose archive source still exists wins over the archive
// document (the restore completed); a live order that an archive copy was
// made from loses to the archive copy (the archive move completed).
func (h ReconcileStatusesCommandHandler) removeDuplicates(ctx context.Context) error {
	archived, err := h.archiveRepo.GetAll(ctx, 0)
	if err != nil {
		return err
	}
	live, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	archiveByID := make(map[string]*order.ArchivedOrder, len(archived))
	for _, a := range archived {
		archiveByID[a.ID().String()] = a
	}

	for _, o := range live {
		from := o.RestoredFrom()
		if from == "" {
			continue
		}
		a, ok := archiveByID[from]
		if !ok {
			continue
		}
		if err := h.archiveRepo.Delete(ctx, a.ID(), a.Rev()); err != nil {
			h.logger.Warn("reconciliation could not finish restore move",
				"archiveId", a.ID().String(), "orderId", o.ID().String(), "error", err)
			continue
		}
		delete(archiveByID, from)
		h.logger.Info("reconciliation finished restore move",
			"archiveId", a.ID().String(), "orderId", o.ID().String())
	}

	liveByID := make(map[string]*order.Order, len(live))
	for _, o := range live {
		liveByID[o.ID().String()] = o
	}

	for _, a := range archiveByID {
		o, ok := liveByID[a.SourceID()]
		if !ok {
			continue
		}
		if err := h.orderRepo.Delete(ctx, o.ID(), o.Rev()); err != nil {
			h.logger.Warn("reconciliation could not finish archive move",
				"orderId", o.ID().String(), "archiveId", a.ID().String(), "error", err)
			continue
		}
		h.logger.Info("reconciliation finished archive move",
			"orderId", o.ID().String(), "archiveId", a.ID().String())
	}
	return nil
}

func (h ReconcileStatusesCommandHandler) repairTables(ctx context.Context, openOrders []*order.Order) {
	tables, err := h.tableRepo.GetAll(ctx)
	if err != nil {
		h.logger.Warn("reconciliation could not list tables", "error", err)
		return
	}

	for _, tbl := range tables {
		expected := h.reconciler.ExpectedTableStatus(tbl, openOrders)
		if expected == tbl.Status() {
			continue
		}

		was := tbl.Status()
		switch expected {
		case table.Occupied:
			tbl.Occupy()
		default:
			tbl.Release()
		}
		if err := h.tableRepo.Save(ctx, tbl); err != nil {
			h.logger.Warn("reconciliation could not repair table status",
				"tableId", tbl.ID().String(), "error", err)
			continue
		}
		h.logger.Info("reconciliation repaired table status",
			"tableId", tbl.ID().String(), "from", string(was), "to", string(expected))
	}
}

func (h ReconcileStatusesCommandHandler) repairCouriers(ctx context.Context, openOrders []*order.Order) {
	couriers, err := h.courierRepo.GetAll(ctx)
	if err != nil {
		h.logger.Warn("reconciliation could not list couriers", "error", err)
		return
	}

	for _, c := range couriers {
		expected := h.reconciler.ExpectedCourierStatus(c, openOrders)
		if expected == c.Status() {
			continue
		}

		was := c.Status()
		switch expected {
		case courier.Busy:
			if err := c.MarkBusy(); err != nil {
				h.logger.Warn("reconciliation could not mark courier busy",
					"courierId", c.ID().String(), "error", err)
				continue
			}
		case courier.Available:
			c.MarkAvailable()
		default:
			continue
		}
		if err := h.courierRepo.Save(ctx, c); err != nil {
			h.logger.Warn("reconciliation could not repair courier status",
				"courierId", c.ID().String(), "error", err)
			continue
		}
		h.logger.Info("reconciliation repaired courier status",
			"courierId", c.ID().String(), "from", string(was), "to", string(expected))
	}
}
