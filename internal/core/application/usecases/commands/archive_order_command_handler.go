package commands

import (
	"context"
	"log/slog"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/ports"
)

// ArchiveOrderCommandHandler performs the two-phase archive move. The
// archive copy is the phase that must succeed; deleting the live document
// and releasing the table are best-effort afterwards, with failures logged
// for the reconciliation job.
type ArchiveOrderCommandHandler struct {
	orderRepo   ports.OrderRepository
	archiveRepo ports.ArchivedOrderRepository
	tableRepo   ports.TableRepository
	courierRepo ports.CourierRepository
	logger      *slog.Logger
}

// NewArchiveOrderCommandHandler creates a handler for the archive move.
func NewArchiveOrderCommandHandler(
	orderRepo ports.OrderRepository,
	archiveRepo ports.ArchivedOrderRepository,
	tableRepo ports.TableRepository,
	courierRepo ports.CourierRepository,
	logger *slog.Logger,
) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		orderRepo:   orderRepo,
		archiveRepo: archiveRepo,
		tableRepo:   tableRepo,
		courierRepo: courierRepo,
		logger:      logger,
	}
}

// Handle processes the archive command and returns the archive copy's key.
func (h ArchiveOrderCommandHandler) Handle(ctx context.Context, command ArchiveOrderCommand) (kernel.DocID, error) {
	if err := command.Validate(); err != nil {
		return kernel.DocID{}, err
	}

	o, err := h.orderRepo.GetByID(ctx, command.OrderID())
	if err != nil {
		return kernel.DocID{}, err
	}

	archived, err := order.NewArchivedOrder(o, time.Now())
	if err != nil {
		return kernel.DocID{}, err
	}
	if err := h.archiveRepo.Save(ctx, archived); err != nil {
		return kernel.DocID{}, err
	}

	if err := h.orderRepo.Delete(ctx, o.ID(), o.Rev()); err != nil {
		h.logger.Warn("archive copy written but live order not deleted, leaving it to reconciliation",
			"orderId", o.ID().String(), "archiveId", archived.ID().String(), "error", err)
		return archived.ID(), nil
	}

	if tableID := o.TableID(); tableID != nil {
		h.releaseTable(ctx, *tableID, archived.ID())
	}
	if courierID := o.CourierID(); courierID != nil {
		h.freeCourier(ctx, *courierID, archived.ID())
	}
	return archived.ID(), nil
}

func (h ArchiveOrderCommandHandler) releaseTable(ctx context.Context, tableID, archiveID kernel.DocID) {
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		tbl, err := h.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return err
		}
		tbl.Release()
		return h.tableRepo.Save(ctx, tbl)
	})
	if err != nil {
		h.logger.Warn("archive could not release table, leaving it to reconciliation",
			"tableId", tableID.String(), "archiveId", archiveID.String(), "error", err)
	}
}

func (h ArchiveOrderCommandHandler) freeCourier(ctx context.Context, courierID, archiveID kernel.DocID) {
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		c, err := h.courierRepo.GetByID(ctx, courierID)
		if err != nil {
			return err
		}
		c.MarkAvailable()
		return h.courierRepo.Save(ctx, c)
	})
	if err != nil {
		h.logger.Warn("archive could not free courier, leaving it to reconciliation",
			"courierId", courierID.String(), "archiveId", archiveID.String(), "error", err)
	}
}
