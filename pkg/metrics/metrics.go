// Package metrics defines the Prometheus collectors for the audit pipeline.
// Everything registers against the default registry at init; the ops server
// exposes it via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "specular"

var (
	// AuditsProcessed counts terminal audit outcomes by status.
	AuditsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audits_processed_total",
		Help:      "Terminal audit outcomes by status.",
	}, []string{"status"})

	// PhaseDuration observes wall-clock time per pipeline phase.
	PhaseDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_phase_duration_seconds",
		Help:      "Wall-clock duration of pipeline phases.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
	}, []string{"phase"})

	// ProviderCalls counts completion attempts by provider and outcome.
	// Outcome is "ok" or the error kind.
	ProviderCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_calls_total",
		Help:      "Provider completion attempts by provider and outcome.",
	}, []string{"provider", "outcome"})

	// RateLimitWait observes time spent blocked on provider rate limiters.
	RateLimitWait = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rate_limit_wait_seconds",
		Help:      "Time spent waiting on provider rate limiters.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"provider"})

	// QueueDepth reports pending audits awaiting a worker. Refreshed by the
	// stuck-audit sweep and on pool health checks.
	QueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Pending audits awaiting a worker.",
	})

	// StuckAuditsRecovered counts audits the recovery sweep marked failed.
	StuckAuditsRecovered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stuck_audits_recovered_total",
		Help:      "Audits recovered by the stuck-audit sweep.",
	})
)

func init() {
	prometheus.MustRegister(
		AuditsProcessed,
		PhaseDuration,
		ProviderCalls,
		RateLimitWait,
		QueueDepth,
		StuckAuditsRecovered,
	)
}
