// Package jobs provides scheduled background tasks for the adoption service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. AvailabilityReconciliationJob - Runs every minute to realign each pet's
// available flag with the set of active (pending or approved) adoption orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
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
// The reconciliation job uses the cron expression "* * * * *", running once
// a minute. Availability drift is rare and repairing it is not latency
// sensitive, so a minute of staleness is acceptable.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; nothing is
// escalated because the next run repairs whatever the failed one missed.
package jobs
