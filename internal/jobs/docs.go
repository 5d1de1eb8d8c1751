// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// PackagingSweepJob runs the packaging auto-confirmation sweep hourly (and
// once at startup). Vendors get a grace period to review submitted packaging
// evidence; once it lapses the sweep confirms on their behalf so the carrier
// can proceed to pickup. Each mission is processed in its own transaction,
// and a vendor decision racing the sweep always wins: the sweep's confirm
// hits the same state precondition as the vendor path and backs off on
// conflict.
package jobs
