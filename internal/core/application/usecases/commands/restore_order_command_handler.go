package commands

import (
	"context"
	"log/slog"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/ports"
)

// RestoreOrderCommandHandler performs the two-phase restore move: the live
// copy is written first, then the archive document is deleted and the table
// re-occupied. Second-phase failures are logged for reconciliation.
type RestoreOrderCommandHandler struct {
	archiveRepo ports.ArchivedOrderRepository
	orderRepo   ports.OrderRepository
	tableRepo   ports.TableRepository
	logger      *slog.Logger
}

// NewRestoreOrderCommandHandler creates a handler for the restore move.
func NewRestoreOrderCommandHandler(
	archiveRepo ports.ArchivedOrderRepository,
	orderRepo ports.OrderRepository,
	tableRepo ports.TableRepository,
	logger *slog.Logger,
) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{
		archiveRepo: archiveRepo,
		orderRepo:   orderRepo,
		tableRepo:   tableRepo,
		logger:      logger,
	}
}

// Handle processes the restore command and returns the live copy's key.
func (h RestoreOrderCommandHandler) Handle(ctx context.Context, command RestoreOrderCommand) (kernel.DocID, error) {
	if err := command.Validate(); err != nil {
		return kernel.DocID{}, err
	}

	archived, err := h.archiveRepo.GetByID(ctx, command.ArchivedID())
	if err != nil {
		return kernel.DocID{}, err
	}

	restored, err := archived.ToRestored(time.Now())
	if err != nil {
		return kernel.DocID{}, err
	}
	if err := h.orderRepo.Save(ctx, restored); err != nil {
		return kernel.DocID{}, err
	}

	if err := h.archiveRepo.Delete(ctx, archived.ID(), archived.Rev()); err != nil {
		h.logger.Warn("live copy written but archive document not deleted, leaving it to reconciliation",
			"archiveId", archived.ID().String(), "orderId", restored.ID().String(), "error", err)
		return restored.ID(), nil
	}

	if tableID := restored.TableID(); tableID != nil {
		h.occupyTable(ctx, *tableID, restored.ID())
	}
	return restored.ID(), nil
}

func (h RestoreOrderCommandHandler) occupyTable(ctx context.Context, tableID, orderID kernel.DocID) {
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		tbl, err := h.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return err
		}
		tbl.Occupy()
		return h.tableRepo.Save(ctx, tbl)
	})
	if err != nil {
		h.logger.Warn("restore could not occupy table, leaving it to reconciliation",
			"tableId", tableID.String(), "orderId", orderID.String(), "error", err)
	}
}
