package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// PrometheusCollector implements MetricsCollector for Prometheus.
type PrometheusCollector struct {
	operations   *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	amountMoved  *prometheus.CounterVec
	circuitState *prometheus.GaugeVec
	circuitOpens *prometheus.CounterVec
}

// NewPrometheusCollector creates a new Prometheus metrics collector.
func NewPrometheusCollector(namespace string) *PrometheusCollector {
	return &PrometheusCollector{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_operations_total",
				Help:      "Total number of ledger operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ledger_operation_duration_seconds",
				Help:      "Latency of ledger operations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		amountMoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_amount_moved_total",
				Help:      "Sum of committed amounts by operation",
			},
			[]string{"operation"},
		),
		circuitState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_state",
				Help:      "Current circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"name"},
		),
		circuitOpens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "circuit_opens_total",
				Help:      "Total number of circuit breaker opens",
			},
			[]string{"name"},
		),
	}
}

// Register registers all collectors with the given registry.
func (pc *PrometheusCollector) Register(registry prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		pc.operations,
		pc.latency,
		pc.amountMoved,
		pc.circuitState,
		pc.circuitOpens,
	}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// RecordLedgerOperation records one ledger call and how it ended.
func (pc *PrometheusCollector) RecordLedgerOperation(operation string, outcome string, duration time.Duration) {
	pc.operations.WithLabelValues(operation, outcome).Inc()
	pc.latency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordAmountMoved adds amount to the money-moved counter.
func (pc *PrometheusCollector) RecordAmountMoved(operation string, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	pc.amountMoved.WithLabelValues(operation).Add(amount.InexactFloat64())
}

// RecordCircuitState reports a circuit breaker transition.
func (pc *PrometheusCollector) RecordCircuitState(name string, state CircuitState) {
	pc.circuitState.WithLabelValues(name).Set(float64(state))
	if state == CircuitOpen {
		pc.circuitOpens.WithLabelValues(name).Inc()
	}
}

var _ MetricsCollector = (*PrometheusCollector)(nil)
var _ MetricsCollector = NoOpCollector{}
