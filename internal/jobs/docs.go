// Package jobs provides scheduled background tasks for the freight service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. CostReconciliationJob - Runs nightly to reprice the inventory against
// the current rates, catching items whose stored costs drifted after a rate
// edit that was not followed by a recompute sweep.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(recomputeCostsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reconciliation job uses the cron expression "0 0 2 * * *", running at
// 02:00 server time when no warehouse staff are editing inventory.
//
// # Error Handling
//
// - Reconciliation failures are logged and retried on the next schedule
// - Failed job starts will stop any already running jobs
package jobs
