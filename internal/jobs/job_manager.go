package jobs

import (
	"fmt"
	"log/slog"

	"parcelmarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	packagingSweepJob *PackagingSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepStalledPackagingCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		packagingSweepJob: NewPackagingSweepJob(sweepHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.packagingSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start packaging sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.packagingSweepJob.Stop()
}
