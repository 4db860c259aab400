package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/1B05H1N/resilient-go/exec"
)

// Prometheus is an exec.Observer that exports one counter increment and
// one latency observation per dispatch attempt.
type Prometheus struct {
	attempts *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

var _ exec.Observer = &Prometheus{}

// NewPrometheus registers the attempt metrics with reg. Pass
// prometheus.DefaultRegisterer to use the process-wide registry; a
// dedicated registry keeps tests and multi-client setups isolated.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)

	return &Prometheus{
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resilient_request_attempts_total",
				Help: "Total number of dispatch attempts",
			},
			[]string{"method", "class", "status"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resilient_request_attempt_latency_seconds",
				Help:    "Dispatch attempt latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "class"},
		),
	}
}

func (p *Prometheus) ObserveAttempt(ev exec.AttemptEvent) {
	class := ev.Class.String()
	p.attempts.WithLabelValues(ev.Method, class, strconv.Itoa(ev.StatusCode)).Inc()
	p.latency.WithLabelValues(ev.Method, class).Observe(ev.Elapsed.Seconds())
}
