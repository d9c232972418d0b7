package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status labels for the calculations counter.
const (
	StatusSuccess  = "success"
	StatusFailure  = "failure"
	StatusRejected = "rejected"
)

// Recorder collects calculation metrics on a private registry so that
// several recorders (one per test, for instance) never collide.
type Recorder struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	lastN        prometheus.Gauge
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fibtime_calculations_total",
			Help: "Fibonacci calculations by algorithm and outcome.",
		}, []string{"algorithm", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fibtime_calculation_duration_seconds",
			Help:    "Wall-clock duration of the timed calculation.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"algorithm"}),
		lastN: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibtime_last_n",
			Help: "Index of the most recent calculation request.",
		}),
	}
	r.registry.MustRegister(r.calculations, r.duration, r.lastN)
	return r
}

// ObserveCalculation records a finished calculation.
func (r *Recorder) ObserveCalculation(algorithm string, n int64, d time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	r.calculations.WithLabelValues(algorithm, status).Inc()
	r.duration.WithLabelValues(algorithm).Observe(d.Seconds())
	r.lastN.Set(float64(n))
}

// ObserveRejected records an index refused by the bounds check.
func (r *Recorder) ObserveRejected(algorithm string, n int64) {
	r.calculations.WithLabelValues(algorithm, StatusRejected).Inc()
	r.lastN.Set(float64(n))
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in Prometheus text format to path,
// atomically, for consumption by the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
