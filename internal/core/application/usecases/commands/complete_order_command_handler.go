package commands

import (
	"context"
	"log/slog"
	"time"

	"restopos/internal/core/domain/model/invoice"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/ports"
)

// CompleteOrderCommandHandler closes an order through billing. The order
// write and the invoice write are the essential legs; releasing the table
// and freeing the courier are secondary writes whose failure is logged and
// left to reconciliation.
type CompleteOrderCommandHandler struct {
	orderRepo   ports.OrderRepository
	invoiceRepo ports.InvoiceRepository
	tableRepo   ports.TableRepository
	courierRepo ports.CourierRepository
	logger      *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	orderRepo ports.OrderRepository,
	invoiceRepo ports.InvoiceRepository,
	tableRepo ports.TableRepository,
	courierRepo ports.CourierRepository,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
		tableRepo:   tableRepo,
		courierRepo: courierRepo,
		logger:      logger,
	}
}

// Handle processes the completion command and returns the new invoice's key.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) (kernel.DocID, error) {
	if err := command.Validate(); err != nil {
		return kernel.DocID{}, err
	}

	var (
		tableID   *kernel.DocID
		courierID *kernel.DocID
		invoiceID kernel.DocID
	)

	err := retryOnConflict(ctx, func(ctx context.Context) error {
		o, err := h.orderRepo.GetByID(ctx, command.OrderID())
		if err != nil {
			return err
		}
		if err := o.Complete(command.PaymentMethod()); err != nil {
			return err
		}
		if err := h.orderRepo.Save(ctx, o); err != nil {
			return err
		}

		inv, err := invoice.NewInvoice(kernel.NewDocID("invoice"), o, 0, time.Now())
		if err != nil {
			return err
		}
		if err := h.invoiceRepo.Save(ctx, inv); err != nil {
			return err
		}

		tableID = o.TableID()
		courierID = o.CourierID()
		invoiceID = inv.ID
		return nil
	})
	if err != nil {
		return kernel.DocID{}, err
	}

	if tableID != nil {
		h.releaseTable(ctx, *tableID)
	}
	if courierID != nil {
		h.freeCourier(ctx, *courierID)
	}
	return invoiceID, nil
}

func (h CompleteOrderCommandHandler) releaseTable(ctx context.Context, tableID kernel.DocID) {
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		tbl, err := h.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return err
		}
		tbl.Release()
		return h.tableRepo.Save(ctx, tbl)
	})
	if err != nil {
		h.logger.Warn("completion could not release table, leaving it to reconciliation",
			"tableId", tableID.String(), "error", err)
	}
}

func (h CompleteOrderCommandHandler) freeCourier(ctx context.Context, courierID kernel.DocID) {
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		c, err := h.courierRepo.GetByID(ctx, courierID)
		if err != nil {
			return err
		}
		c.MarkAvailable()
		return h.courierRepo.Save(ctx, c)
	})
	if err != nil {
		h.logger.Warn("completion could not free courier, leaving it to reconciliation",
			"courierId", courierID.String(), "error", err)
	}
}
