package cmd

import (
	"context"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/logger"
	"trippy/internal/pkg/metrics"
)

// LoggingFaultRecorder reports dangling catalog references as warnings and
// counts them per attachment kind.
type LoggingFaultRecorder struct {
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewLoggingFaultRecorder(log logger.Logger, m *metrics.Metrics) LoggingFaultRecorder {
	return LoggingFaultRecorder{log: log.With("component", "integrity"), metrics: m}
}

func (r LoggingFaultRecorder) RecordIntegrityFault(_ context.Context, fault *errs.IntegrityFaultError) {
	r.metrics.IntegrityFaults.WithLabelValues(fault.Attachment).Inc()
	r.log.Warn("Dangling catalog reference",
		"owner", fault.Owner,
		"owner_id", fault.OwnerID,
		"attachment", fault.Attachment,
		"id", fault.ID)
}
