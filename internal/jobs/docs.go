// Package jobs provides scheduled background tasks for the seller hub.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the service needs.
//
// # Available Jobs
//
// 1. StaleReadyOrdersJob - Runs every minute and warns about orders that have
// been sitting in the ready status without a delivery partner for too long.
// 2. DailyEarningsJob - Runs at midnight and logs the previous day's wallet
// summary.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderRepo, walletHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are read-only; failures are logged and retried on the next tick.
// Failed job starts will stop any already running jobs.
package jobs
