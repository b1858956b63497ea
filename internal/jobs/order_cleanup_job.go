package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCleanupJob cancels abandoned orders on a schedule. An order counts as
// abandoned when it has stayed in "created" status longer than the configured
// age. Runs every minute.
type OrderCleanupJob struct {
	handler   commands.CancelStaleOrdersCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderCleanupJob creates the cleanup job. olderThan is the minimum age
// of a created order before it gets cancelled.
func NewOrderCleanupJob(
	handler commands.CancelStaleOrdersCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *OrderCleanupJob {
	return &OrderCleanupJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_cleanup_job"),
	}
}

// Start begins the cleanup job, running at the top of every minute.
func (j *OrderCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order cleanup job misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order cleanup job failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *OrderCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order cleanup job stopped")
}
