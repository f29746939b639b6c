package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the prometheus collectors for the process.
type Prometheus struct {
	Events *prometheus.CounterVec
}

// NewPrometheusMetrics creates the prometheus collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{Events: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rulelearn",
			Name:      "events",
		}, []string{"stage", "model"}),
	}
}
