// Package jobs provides scheduled background tasks for the transport record
// keeper, built on github.com/robfig/cron/v3 and managed through JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"transport/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueOrderWatchJob *OverdueOrderWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueOrdersHandler queries.GetOverdueOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueOrderWatchJob: NewOverdueOrderWatchJob(overdueOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrderWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue order watch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrderWatchJob.Stop()
}
