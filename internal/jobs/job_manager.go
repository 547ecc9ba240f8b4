package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expression of each job.
type Schedules struct {
	WalCheckpoint string
	OrderStats    string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	walCheckpointJob *WalCheckpointJob
	orderStatsJob    *OrderStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	store Store,
	publisher OrderStatsPublisher,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		walCheckpointJob: NewWalCheckpointJob(store, schedules.WalCheckpoint, logger),
		orderStatsJob:    NewOrderStatsJob(store, publisher, schedules.OrderStats, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.walCheckpointJob.Start(); err != nil {
		return fmt.Errorf("failed to start WAL checkpoint job: %w", err)
	}

	if err := jm.orderStatsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.walCheckpointJob.Stop()
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
	jm.walCheckpointJob.Stop()
}
