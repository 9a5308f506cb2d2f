package cmd

import (
	"testing"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/logger"
	"trippy/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingFaultRecorder(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	m := metrics.NewMetrics("trippy_test")
	recorder := NewLoggingFaultRecorder(logger.FromZap(zap.New(core)), m)

	recorder.RecordIntegrityFault(t.Context(), errs.NewIntegrityFaultError("package", int64(2), "hotel", int64(11)))
	recorder.RecordIntegrityFault(t.Context(), errs.NewIntegrityFaultError("package", int64(3), "hotel", int64(12)))

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Dangling catalog reference", entry.Message)
	assert.Equal(t, "hotel", entry.ContextMap()["attachment"])
	assert.Equal(t, "integrity", entry.ContextMap()["component"])
	assert.InDelta(t, 2, testutil.ToFloat64(m.IntegrityFaults.WithLabelValues("hotel")), 0)
	assert.Zero(t, testutil.ToFloat64(m.IntegrityFaults.WithLabelValues("guide")))
}

func TestNewCompositionRoot_RequiresSecret(t *testing.T) {
	_, err := NewCompositionRoot(Config{JWTTTL: defaultJWTTTL}, nil, logger.NewNop())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
