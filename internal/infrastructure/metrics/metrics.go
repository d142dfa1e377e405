// Package metrics provides Prometheus metrics for the underwriting service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnderwritingMetrics implements port.UnderwritingMetrics.
type UnderwritingMetrics struct {
	// RunsTotal counts engine runs by investment type.
	RunsTotal *prometheus.CounterVec
	// RunDuration tracks engine run latency in seconds.
	RunDuration *prometheus.HistogramVec
	// QualificationsTotal counts debt-fund checks by outcome.
	QualificationsTotal *prometheus.CounterVec
	// ScenarioWritesTotal counts scenario mutations by operation.
	ScenarioWritesTotal *prometheus.CounterVec
}

// New registers the underwriting collectors on reg. Pass
// prometheus.DefaultRegisterer in production.
func New(reg prometheus.Registerer) *UnderwritingMetrics {
	factory := promauto.With(reg)
	return &UnderwritingMetrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "covey",
				Subsystem: "underwriting",
				Name:      "runs_total",
				Help:      "Total number of underwriting engine runs by investment type",
			},
			[]string{"investment_type"},
		),
		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "covey",
				Subsystem: "underwriting",
				Name:      "run_duration_seconds",
				Help:      "Duration of underwriting engine runs in seconds",
				Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			},
			[]string{"investment_type"},
		),
		QualificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "covey",
				Subsystem: "debt_fund",
				Name:      "qualifications_total",
				Help:      "Total number of debt fund qualification checks by outcome",
			},
			[]string{"investment_type", "eligible"},
		),
		ScenarioWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "covey",
				Subsystem: "scenarios",
				Name:      "writes_total",
				Help:      "Total number of scenario writes by operation",
			},
			[]string{"operation"},
		),
	}
}

func (m *UnderwritingMetrics) ObserveRun(investmentType string, elapsed time.Duration) {
	m.RunsTotal.WithLabelValues(investmentType).Inc()
	m.RunDuration.WithLabelValues(investmentType).Observe(elapsed.Seconds())
}

func (m *UnderwritingMetrics) ObserveQualification(investmentType string, eligible bool) {
	m.QualificationsTotal.WithLabelValues(investmentType, strconv.FormatBool(eligible)).Inc()
}

func (m *UnderwritingMetrics) ScenarioWritten(operation string) {
	m.ScenarioWritesTotal.WithLabelValues(operation).Inc()
}
