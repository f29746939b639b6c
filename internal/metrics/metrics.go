package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the global metrics tracker for the process.
var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Events)
}

// Metrics wraps the prometheus collectors.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementEvents counts an event for the given stage and model.
func (m *Metrics) IncrementEvents(labels ...string) {
	m.prometheus.Events.WithLabelValues(labels...).Inc()
}
