package prometheus

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

const namespace = "depman"

// MetricsRepository keeps per-run Prometheus metrics on a private registry so that they can
// be written to a node-exporter textfile once the run is over.
type MetricsRepository struct {
	registry *prom.Registry
	results  *prom.CounterVec
	failures *prom.CounterVec
	duration *prom.GaugeVec
	lastRun  *prom.GaugeVec
	now      func() time.Time
}

// NewMetricsRepository constructs and registers the depman metrics.
func NewMetricsRepository() *MetricsRepository {
	it := &MetricsRepository{
		registry: prom.NewRegistry(),
		results: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "dependency_results_total",
			Help:      "Dependency results by phase and outcome",
		}, []string{"phase", "outcome"}),
		failures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "dependency_failures_total",
			Help:      "Dependencies that ended a phase with an error",
		}, []string{"phase", "dependency"}),
		duration: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "dependency_duration_seconds",
			Help:      "Time spent on each dependency in the last run",
		}, []string{"phase", "dependency"}),
		lastRun: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time at which the last run of a phase finished",
		}, []string{"phase"}),
		now: time.Now,
	}
	it.registry.MustRegister(it.results, it.failures, it.duration, it.lastRun)
	return it
}

// Registry exposes the underlying registry, mostly for tests.
func (it *MetricsRepository) Registry() *prom.Registry {
	return it.registry
}

func (it *MetricsRepository) ObserveResult(phase string, result entities.Result) {
	it.results.WithLabelValues(phase, string(result.Outcome)).Inc()
	it.duration.WithLabelValues(phase, result.Dependency).Set(result.Duration.Seconds())
	if result.Failed() {
		it.failures.WithLabelValues(phase, result.Dependency).Inc()
	}
}

func (it *MetricsRepository) MarkRunFinished(phase string) {
	it.lastRun.WithLabelValues(phase).Set(float64(it.now().Unix()))
}

// WriteTextfile atomically writes the metrics in the Prometheus text format.
func (it *MetricsRepository) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, it.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %q: %w", path, err)
	}
	return nil
}
