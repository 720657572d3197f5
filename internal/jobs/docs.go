// Package jobs provides scheduled background tasks for the warehouse system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for warehouse operations.
//
// # Available Jobs
//
// 1. LowStockReportJob - Runs every minute and logs products whose stock
// dropped to the configured threshold or below
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the database and threshold
//	jobManager := jobs.NewJobManager(db, cfg.LowStockThreshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job logs query failures and keeps running; a failed scan never
// stops the schedule.
package jobs
