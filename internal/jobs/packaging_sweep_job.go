package jobs

import (
	"context"
	"log/slog"
	"sync"

	"parcelmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PackagingSweepJob runs the packaging auto-confirmation sweep on a schedule.
// It confirms packaging on behalf of vendors who let the grace period lapse,
// so carriers are never blocked indefinitely at the pickup point.
type PackagingSweepJob struct {
	handler commands.SweepStalledPackagingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger

	// running keeps a slow sweep from overlapping with the next tick.
	running sync.Mutex
}

// NewPackagingSweepJob creates the sweep job.
// The sweep runs hourly; missing a tick only delays an auto-confirmation,
// it never loses one, because eligibility is computed from stored timestamps.
func NewPackagingSweepJob(handler commands.SweepStalledPackagingCommandHandler, logger *slog.Logger) *PackagingSweepJob {
	return &PackagingSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "packaging_sweep_job"),
	}
}

// Start schedules the hourly sweep and runs one immediately, picking up
// anything that became eligible while the process was down.
func (j *PackagingSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.runSweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Packaging sweep job started (running hourly)")

	go j.runSweep()
	return nil
}

// Stop stops the sweep job.
func (j *PackagingSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Packaging sweep job stopped")
}

func (j *PackagingSweepJob) runSweep() {
	if !j.running.TryLock() {
		j.logger.Info("Previous sweep still running, skipping tick")
		return
	}
	defer j.running.Unlock()

	ctx := context.Background()

	result, err := j.handler.Handle(ctx, commands.NewSweepStalledPackagingCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Packaging sweep failed", "error", err)
		return
	}

	confirmed := 0
	for _, outcome := range result.Outcomes {
		if outcome.Err == nil {
			confirmed++
			continue
		}
		// Conflicts are routine: the vendor responded between the listing
		// and the confirm. Anything else deserves a look.
		j.logger.WarnContext(ctx, "Sweep skipped mission",
			"parcel_id", outcome.ParcelID.String(),
			"error", outcome.Err,
		)
	}

	if result.Processed > 0 {
		j.logger.InfoContext(ctx, "Packaging sweep completed",
			"processed", result.Processed,
			"confirmed", confirmed,
		)
	}
}
