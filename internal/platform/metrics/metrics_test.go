package metrics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	pc := metrics.NewPrometheusCollector("corebank")
	require.NoError(t, pc.Register(registry))

	pc.RecordLedgerOperation(metrics.OpTransfer, "success", 10*time.Millisecond)
	pc.RecordLedgerOperation(metrics.OpTransfer, "success", 12*time.Millisecond)
	pc.RecordLedgerOperation(metrics.OpTransfer, "insufficient_funds", time.Millisecond)
	pc.RecordAmountMoved(metrics.OpDeposit, decimal.RequireFromString("12.50"))
	pc.RecordAmountMoved(metrics.OpDeposit, decimal.Zero)
	pc.RecordCircuitState("principal_resolver", metrics.CircuitOpen)

	families, err := registry.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if f.GetName() == "corebank_ledger_operations_total" {
				outcome := ""
				for _, lp := range m.GetLabel() {
					if lp.GetName() == "outcome" {
						outcome = lp.GetValue()
					}
				}
				values["ops_"+outcome] = m.GetCounter().GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				values[f.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[f.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, values["ops_success"])
	assert.Equal(t, 1.0, values["ops_insufficient_funds"])
	assert.Equal(t, 12.5, values["corebank_ledger_amount_moved_total"])
	assert.Equal(t, float64(metrics.CircuitOpen), values["corebank_circuit_state"])
	assert.Equal(t, 1.0, values["corebank_circuit_opens_total"])
}

func TestRegisterTwiceFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	pc := metrics.NewPrometheusCollector("corebank")
	require.NoError(t, pc.Register(registry))
	assert.Error(t, pc.Register(registry))
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{fmt.Errorf("wrapped: %w", apperrors.ErrInsufficientFunds), "insufficient_funds"},
		{apperrors.ErrAccountInactive, "account_inactive"},
		{apperrors.ErrNotFound, "not_found"},
		{apperrors.ErrUnavailable, "unavailable"},
		{assert.AnError, "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, metrics.Outcome(tt.err))
	}
}

func TestCircuitStateString(t *testing.T) {
	assert.Equal(t, "closed", metrics.CircuitClosed.String())
	assert.Equal(t, "open", metrics.CircuitOpen.String())
	assert.Equal(t, "half-open", metrics.CircuitHalfOpen.String())
	assert.Equal(t, "unknown", metrics.CircuitState(9).String())
}
