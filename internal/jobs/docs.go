// Package jobs provides scheduled background tasks for the food ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderLifecycleJob runs one AdvanceOrdersCommand per tick. Each tick moves
// Preparing orders out for delivery and delivers orders that are out for delivery.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&advanceOrdersHandler, 10*time.Second, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The interval is fixed at construction and scheduled with cron.Every, so the
// first tick happens one interval after start. Intervals below one second are
// rejected by Start.
//
// # Error Handling
//
//   - Orders with an unrecognized status are logged at ERROR with their id and skipped
//   - A failed sweep is logged and the next tick runs as usual
//   - A panic inside a tick is recovered by the cron chain
//   - A tick that is due while the previous one is still running is skipped
package jobs
