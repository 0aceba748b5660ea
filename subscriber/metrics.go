package subscriber

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tilecollapse/gridwfc/grid"
)

// MetricsSubscriber exports collapse counts, generation outcomes, and
// generation duration as Prometheus metrics.
type MetricsSubscriber struct {
	collapsesTotal     prometheus.Counter
	generationsTotal   *prometheus.CounterVec
	failuresTotal      *prometheus.CounterVec
	generationDuration prometheus.Histogram

	start time.Time
}

// NewMetricsSubscriber registers its metrics with reg and returns a
// ready-to-attach subscriber.
func NewMetricsSubscriber(reg prometheus.Registerer) *MetricsSubscriber {
	m := &MetricsSubscriber{
		collapsesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gridwfc_collapses_total",
			Help: "Number of cell collapses committed across all generations.",
		}),
		generationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridwfc_generations_total",
			Help: "Number of generation runs, labeled by outcome.",
		}, []string{"result"}),
		failuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridwfc_failures_total",
			Help: "Number of failed generation runs, labeled by CollapseError kind.",
		}, []string{"kind"}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridwfc_generation_duration_seconds",
			Help:    "Wall-clock duration of a generation run, start to end.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.collapsesTotal, m.generationsTotal, m.failuresTotal, m.generationDuration)
	return m
}

func (m *MetricsSubscriber) OnGenerationStart(grid.Size) {
	m.start = time.Now()
}

func (m *MetricsSubscriber) OnCollapse(grid.Position, uint64, int) {
	m.collapsesTotal.Inc()
}

func (m *MetricsSubscriber) OnGenerationEnd(success bool, kind string) {
	result := "failure"
	if success {
		result = "success"
	} else {
		m.failuresTotal.WithLabelValues(kind).Inc()
	}
	m.generationsTotal.WithLabelValues(result).Inc()
	m.generationDuration.Observe(time.Since(m.start).Seconds())
}
