package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCountAttemptsAndOutcomes(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())
	boom := errors.New("boom")

	m.ObserveAttempt(boom)
	m.ObserveAttempt(nil)
	m.ObserveTranscode(2, 10*time.Millisecond, nil)

	m.ObserveAttempt(boom)
	m.ObserveTranscode(1, time.Millisecond, boom)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.attempts.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.attempts.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.retries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures))
}

func TestMustNewMetricsPanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustNewMetrics(reg)

	assert.Panics(t, func() { MustNewMetrics(reg) })
}
