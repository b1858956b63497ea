package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderCleanupJob *OrderCleanupJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	staleOrderTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderCleanupJob: NewOrderCleanupJob(cancelStaleOrdersHandler, staleOrderTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start order cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderCleanupJob.Stop()
}
