package jobs

import (
	"fmt"

	"trippy/internal/core/domain/services"
	"trippy/internal/pkg/logger"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	integrityAuditJob *IntegrityAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	auditor PackageAuditor,
	faults services.FaultRecorder,
	auditSchedule string,
	log logger.Logger,
) *JobManager {
	return &JobManager{
		integrityAuditJob: NewIntegrityAuditJob(auditor, faults, auditSchedule, log),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.integrityAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start integrity audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.integrityAuditJob.Stop()
}
