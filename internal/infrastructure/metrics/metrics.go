package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for transcode activity.
type Metrics struct {
	attempts  *prometheus.CounterVec
	retries   prometheus.Counter
	failures  prometheus.Counter
	durations *prometheus.HistogramVec
}

// MustNewMetrics registers the collectors with reg and panics on duplicate
// registration.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	attempts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "image_previewer",
			Subsystem: "transcode",
			Name:      "attempts_total",
			Help:      "Transcode attempts by outcome.",
		},
		[]string{"outcome"},
	)
	retries := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "image_previewer",
		Subsystem: "transcode",
		Name:      "retries_total",
		Help:      "Transcodes that needed more than one attempt.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "image_previewer",
		Subsystem: "transcode",
		Name:      "failures_total",
		Help:      "Transcodes that exhausted every attempt.",
	})
	durations := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "image_previewer",
			Subsystem: "transcode",
			Name:      "duration_seconds",
			Help:      "Wall time of a transcode including retries.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	reg.MustRegister(attempts, retries, failures, durations)

	return &Metrics{
		attempts:  attempts,
		retries:   retries,
		failures:  failures,
		durations: durations,
	}
}

func (m *Metrics) ObserveAttempt(err error) {
	m.attempts.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) ObserveTranscode(attempts int, elapsed time.Duration, err error) {
	if attempts > 1 {
		m.retries.Inc()
	}
	if err != nil {
		m.failures.Inc()
	}
	m.durations.WithLabelValues(outcome(err)).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
