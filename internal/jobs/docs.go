// Package jobs provides scheduled background tasks for the orders service.
//
// It implements cron-based jobs using github.com/robfig/cron/v3. The single
// job today is OrderCleanupJob, which runs at the top of every minute and
// cancels orders that have stayed in "created" status beyond the configured
// TTL. Cancellation is unconditional and idempotent, so a sweep racing a
// concurrent customer cancellation is harmless.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, ttl, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
