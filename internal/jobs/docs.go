// Package jobs provides scheduled background tasks for the ordering
// platform, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RiderDispatchJob - Runs every second to match orders awaiting pickup
// with free riders.
// 2. LocationCleanupJob - Runs every minute to drop stored positions of
// riders that no longer carry an active order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, cleanupHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job treats "no order waiting" and "no free rider" as expected
// idle outcomes and does not log them as errors. A failed job start stops any
// jobs already running.
package jobs
