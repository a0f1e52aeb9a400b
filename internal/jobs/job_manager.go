package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderLifecycleJob *OrderLifecycleJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(advancer OrderAdvancer, tickInterval time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderLifecycleJob: NewOrderLifecycleJob(advancer, tickInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderLifecycleJob.Start(); err != nil {
		return fmt.Errorf("failed to start order lifecycle job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ticks to return.
func (jm *JobManager) StopAll() {
	jm.orderLifecycleJob.Stop()
}
