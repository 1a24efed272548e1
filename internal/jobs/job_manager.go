// Package jobs provides the scheduled background tasks of the application,
// built on github.com/robfig/cron/v3. The only job today is the status
// reconciliation, which sweeps the store for drift between orders, tables
// and couriers.
package jobs

import (
	"fmt"
	"log/slog"

	"restopos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reconciliationJob *ReconciliationJob
}

// NewJobManager creates a job manager wiring every job to its handler.
func NewJobManager(
	reconcileHandler commands.ReconcileStatusesCommandHandler,
	reconcileSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliationJob: NewReconciliationJob(reconcileHandler, reconcileSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
}
