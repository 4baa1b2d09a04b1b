// Package jobs provides scheduled background tasks for the parcel tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. DeliveryStatsJob - Runs every minute to log delivery counts per status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(statusCountsHandler, logger)
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
// The stats job uses the cron expression "0 * * * * *" which fires at the
// top of every minute. It reads from the database and writes a single log
// line; delivery state is never modified by a job.
package jobs
