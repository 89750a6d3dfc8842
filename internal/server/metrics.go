package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the recap service collectors
type Metrics struct {
	generations  *prometheus.CounterVec
	invalidInput prometheus.Counter
	duration     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activity_recap",
			Name:      "generations_total",
			Help:      "Recaps generated, by profile.",
		}, []string{"profile"}),
		invalidInput: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "activity_recap",
			Name:      "invalid_input_total",
			Help:      "Recap requests rejected as invalid input.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "activity_recap",
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating a recap.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	reg.MustRegister(m.generations, m.invalidInput, m.duration)
	return m
}

// RecordGeneration counts a successful generation
func (m *Metrics) RecordGeneration(profile string, elapsed time.Duration) {
	m.generations.WithLabelValues(profile).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// RecordInvalidInput counts a rejected request
func (m *Metrics) RecordInvalidInput() {
	m.invalidInput.Inc()
}
