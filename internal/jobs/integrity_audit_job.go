package jobs

import (
	"context"

	"trippy/internal/core/application/usecases/queries"
	"trippy/internal/core/domain/services"
	"trippy/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// PackageAuditor runs one integrity audit over the catalog.
type PackageAuditor interface {
	Handle(ctx context.Context, query queries.AuditPackageIntegrityQuery) (queries.AuditPackageIntegrityQueryResponse, error)
}

// IntegrityAuditJob periodically audits package attachments and hands every
// dangling reference to a FaultRecorder.
type IntegrityAuditJob struct {
	auditor  PackageAuditor
	faults   services.FaultRecorder
	schedule string
	cron     *cron.Cron
	logger   logger.Logger
}

// NewIntegrityAuditJob creates the job. schedule is a cron expression with an
// optional seconds field or a descriptor such as "@every 5m".
func NewIntegrityAuditJob(
	auditor PackageAuditor,
	faults services.FaultRecorder,
	schedule string,
	log logger.Logger,
) *IntegrityAuditJob {
	return &IntegrityAuditJob{
		auditor:  auditor,
		faults:   faults,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   log.With("component", "integrity_audit_job"),
	}
}

// Start registers the audit on its schedule and starts the scheduler.
// An unparsable schedule is returned as an error and nothing is started.
func (j *IntegrityAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Integrity audit job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single audit and returns the number of faults found.
func (j *IntegrityAuditJob) RunOnce(ctx context.Context) int {
	resp, err := j.auditor.Handle(ctx, queries.NewAuditPackageIntegrityQuery())
	if err != nil {
		j.logger.Error("Integrity audit failed", "error", err)
		return 0
	}

	for _, fault := range resp.Faults {
		j.faults.RecordIntegrityFault(ctx, fault)
	}

	if len(resp.Faults) > 0 {
		j.logger.Warn("Integrity audit found dangling references",
			"packages_checked", resp.PackagesChecked, "faults", len(resp.Faults))
	} else {
		j.logger.Debug("Integrity audit clean", "packages_checked", resp.PackagesChecked)
	}

	return len(resp.Faults)
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *IntegrityAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Integrity audit job stopped")
}
