package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the refinement module.
type Metrics struct {
	// Check outcomes by refinement and result ("valid", "invalid")
	CheckOutcome *prometheus.CounterVec

	// Check latency by refinement
	CheckLatency *prometheus.HistogramVec

	// Values per batch check
	BatchSize prometheus.Histogram

	// Generated values by kind ("uuid", "local_date", "duration")
	Generated *prometheus.CounterVec
}

// New creates the refinement metrics and registers them with reg.
// A nil reg registers with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CheckOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coretypes_refinement_checks_total",
			Help: "Total refinement checks by refinement and result",
		}, []string{"refinement", "result"}),

		CheckLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coretypes_refinement_check_duration_seconds",
			Help:    "Duration of a single refinement check, including boundary parsing",
			Buckets: []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}, []string{"refinement"}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "coretypes_refinement_batch_size",
			Help:    "Number of values submitted per batch check",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),

		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coretypes_generated_values_total",
			Help: "Total values produced by the generation helpers by kind",
		}, []string{"kind"}),
	}
}

// IncrementOutcome records a check result.
func (m *Metrics) IncrementOutcome(refinement string, valid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.CheckOutcome.WithLabelValues(refinement, result).Inc()
}

// ObserveCheckLatency records the duration of one check.
func (m *Metrics) ObserveCheckLatency(refinement string, d time.Duration) {
	if m != nil {
		m.CheckLatency.WithLabelValues(refinement).Observe(d.Seconds())
	}
}

// ObserveBatchSize records the number of values in a batch check.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}

// IncrementGenerated records a value produced by a generation helper.
func (m *Metrics) IncrementGenerated(kind string) {
	if m != nil {
		m.Generated.WithLabelValues(kind).Inc()
	}
}
