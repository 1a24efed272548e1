package jobs

import (
	"context"
	"errors"
	"log/slog"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation every minute.
const DefaultReconcileSchedule = "0 * * * * *"

// ReconciliationJob periodically repairs the drift the write path could not
// prevent: tables and couriers whose status disagrees with the open orders,
// and live/archive duplicates left behind by an interrupted move.
type ReconciliationJob struct {
	handler  commands.ReconcileStatusesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationJob creates the job. An empty schedule falls back to
// running every minute.
func NewReconciliationJob(
	handler commands.ReconcileStatusesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &ReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reconciliation_job"),
	}
}

// Start begins the scheduled reconciliation runs.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileStatusesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A store outage resolves itself; the next run retries.
			if errors.Is(err, errs.ErrUnavailable) {
				j.logger.WarnContext(ctx, "Reconciliation skipped, store unreachable", "error", err)
				return
			}
			j.logger.ErrorContext(ctx, "Reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
