// Package jobs provides scheduled background tasks for the shop backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PendingOrderExpiryJob cancels orders that were placed but never paid. It
// selects Pending orders with a Pending payment older than the configured age
// and cancels each one in its own unit of work. An order paid between
// selection and cancellation is skipped.
//
// # Usage
//
//	expiry := jobs.NewPendingOrderExpiryJob(&expireHandler, 24*time.Hour, 100, "0 */5 * * * *", logger)
//	jobManager := jobs.NewJobManager(expiry)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields, seconds first. Overlapping runs of the same job
// are skipped.
package jobs
