package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pcrgen/core/anneal"
)

// Metrics provides observability for template generation. Each instance owns
// its registry so batches and tests do not share counters.
type Metrics struct {
	Registry *prometheus.Registry

	// Finished runs by terminal status
	Runs *prometheus.CounterVec

	// Iterations used per run
	Iterations prometheus.Histogram

	// Best cost reached per run
	BestCost prometheus.Histogram

	// Rules still failing on a run's best template
	RuleFailures *prometheus.CounterVec

	// Wall time of the last batch
	BatchDuration prometheus.Gauge

	// Random sequences scored by analyze
	Samples prometheus.Counter
}

// New creates a Metrics instance with all pcrgen metrics registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pcrgen_runs_total",
			Help: "Total annealing runs by terminal status",
		}, []string{"status"}), // status: "converged", "exhausted", "cancelled"

		Iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pcrgen_run_iterations",
			Help:    "Iterations performed per annealing run",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		}),

		BestCost: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pcrgen_run_best_cost",
			Help:    "Total cost of the best template found per run",
			Buckets: []float64{0, 0.5, 1, 2, 5, 10, 20, 50, 100},
		}),

		RuleFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pcrgen_rule_failures_total",
			Help: "Rules with a positive cost on a run's best template",
		}, []string{"rule"}),

		BatchDuration: f.NewGauge(prometheus.GaugeOpts{
			Name: "pcrgen_batch_duration_seconds",
			Help: "Wall time of the last generate or analyze batch",
		}),

		Samples: f.NewCounter(prometheus.CounterOpts{
			Name: "pcrgen_samples_total",
			Help: "Random sequences scored for statistics",
		}),
	}
}

// ObserveRun records one finished run.
func (m *Metrics) ObserveRun(res anneal.Result) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(res.Status.String()).Inc()
	m.Iterations.Observe(float64(res.Iterations))
	m.BestCost.Observe(res.Report.Total)
	for _, e := range res.Report.Failing() {
		m.RuleFailures.WithLabelValues(e.Name).Inc()
	}
}

// ObserveBatch records the wall time of a whole batch.
func (m *Metrics) ObserveBatch(d time.Duration) {
	if m != nil {
		m.BatchDuration.Set(d.Seconds())
	}
}

// AddSamples counts sampled sequences.
func (m *Metrics) AddSamples(n int) {
	if m != nil {
		m.Samples.Add(float64(n))
	}
}

// WriteFile dumps the registry in the text exposition format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
