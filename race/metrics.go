// SPDX-License-Identifier: MIT

package race

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "misopt"

// Metrics mirrors race samples into Prometheus collectors.
type Metrics struct {
	// BestFitness is the latest sampled best fitness, by worker.
	BestFitness *prometheus.GaugeVec
	// Samples counts samples taken, final ones included.
	Samples prometheus.Counter
	// ElapsedSeconds is the race time of the latest sample.
	ElapsedSeconds prometheus.Gauge
}

// NewMetrics registers the collectors on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BestFitness: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "best_fitness",
			Help:      "Best independent set size found so far, by worker.",
		}, []string{"worker"}),
		Samples: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "race",
			Name:      "samples_total",
			Help:      "Number of race samples taken.",
		}),
		ElapsedSeconds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "race",
			Name:      "elapsed_seconds",
			Help:      "Race time at the latest sample.",
		}),
	}
}

func (m *Metrics) observe(s Sample) {
	for worker, fit := range s.Fitness {
		m.BestFitness.WithLabelValues(worker).Set(float64(fit))
	}
	m.Samples.Inc()
	m.ElapsedSeconds.Set(s.Elapsed.Seconds())
}
