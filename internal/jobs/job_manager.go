package jobs

import (
	"fmt"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	riderDispatchJob   *RiderDispatchJob
	locationCleanupJob *LocationCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchRiderCommandHandler,
	cleanupHandler commands.CleanupLocationsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		riderDispatchJob:   NewRiderDispatchJob(dispatchHandler, logger),
		locationCleanupJob: NewLocationCleanupJob(cleanupHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.riderDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider dispatch job: %w", err)
	}

	if err := jm.locationCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.riderDispatchJob.Stop()
		return fmt.Errorf("failed to start location cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.riderDispatchJob.Stop()
	jm.locationCleanupJob.Stop()
}
