// Package metrics records onboarding run metrics in a private Prometheus
// registry. The tool is a one-shot CLI, so metrics are not served; they are
// written once at the end of a run in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cyberlab"

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Recorder holds the metric vectors for one run. A nil *Recorder is valid
// and records nothing, so callers never need to check whether metrics are
// enabled.
type Recorder struct {
	registry *prometheus.Registry

	apiCallsTotal    *prometheus.CounterVec
	apiLatency       *prometheus.HistogramVec
	invitationsTotal *prometheus.CounterVec
	phaseDuration    *prometheus.GaugeVec
	phaseResult      *prometheus.GaugeVec
	runFailures      prometheus.Gauge
	runCompleted     prometheus.Gauge
}

// New creates a recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		apiCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cloudshare",
				Name:      "api_calls_total",
				Help:      "Total number of CloudShare API calls by operation and result",
			},
			[]string{"operation", "result"},
		),

		apiLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "cloudshare",
				Name:      "api_latency_seconds",
				Help:      "Latency of CloudShare API calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"operation"},
		),

		invitationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "onboarding",
				Name:      "invitations_total",
				Help:      "Total number of user invitations by result",
			},
			[]string{"result"},
		),

		phaseDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "onboarding",
				Name:      "phase_duration_seconds",
				Help:      "Duration of each workflow phase in seconds",
			},
			[]string{"phase"},
		),

		phaseResult: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "onboarding",
				Name:      "phase_success",
				Help:      "Whether the phase succeeded (1) or not (0)",
			},
			[]string{"phase"},
		),

		runFailures: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "failure_records",
			Help:      "Number of failure records collected during the run",
		}),

		runCompleted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the run finished",
		}),
	}

	r.registry.MustRegister(
		r.apiCallsTotal,
		r.apiLatency,
		r.invitationsTotal,
		r.phaseDuration,
		r.phaseResult,
		r.runFailures,
		r.runCompleted,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveCall records one API call.
func (r *Recorder) ObserveCall(op string, success bool, duration time.Duration) {
	if r == nil {
		return
	}
	r.apiCallsTotal.WithLabelValues(op, result(success)).Inc()
	r.apiLatency.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordInvitation records one invitation outcome.
func (r *Recorder) RecordInvitation(success bool) {
	if r == nil {
		return
	}
	r.invitationsTotal.WithLabelValues(result(success)).Inc()
}

// RecordPhase records a phase's duration and outcome.
func (r *Recorder) RecordPhase(phase string, success bool, duration time.Duration) {
	if r == nil {
		return
	}
	r.phaseDuration.WithLabelValues(phase).Set(duration.Seconds())
	if success {
		r.phaseResult.WithLabelValues(phase).Set(1)
	} else {
		r.phaseResult.WithLabelValues(phase).Set(0)
	}
}

// RecordRun records the end-of-run summary.
func (r *Recorder) RecordRun(failures int, finished time.Time) {
	if r == nil {
		return
	}
	r.runFailures.Set(float64(failures))
	r.runCompleted.Set(float64(finished.Unix()))
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}

func result(success bool) string {
	if success {
		return ResultSuccess
	}
	return ResultError
}
