// Package jobs provides scheduled background tasks for the booking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// IntegrityAuditJob composes every catalog package on a schedule and reports
// each attachment reference that points at a missing hotel, guide or car rental.
// Reads never fail because of such a reference, so the audit is how operators
// find out about them.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(auditHandler, faultRecorder, "@every 5m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are parsed with seconds enabled, so both six-field cron
// expressions ("0 */5 * * * *") and descriptors ("@every 5m", "@hourly") work.
//
// # Error Handling
//
// - A failed audit run is logged and retried on the next tick
// - Failed job starts stop any already running jobs
package jobs
