package metrics

import (
	"errors"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Ledger operation names used as metric labels.
const (
	OpDeposit  = "deposit"
	OpTransfer = "transfer"
	OpHistory  = "history"
)

// MetricsCollector defines the interface for collecting ledger metrics.
type MetricsCollector interface {
	// RecordLedgerOperation records one ledger call and how it ended.
	RecordLedgerOperation(operation string, outcome string, duration time.Duration)

	// RecordAmountMoved adds a committed amount to the money-moved counter.
	RecordAmountMoved(operation string, amount decimal.Decimal)

	// RecordCircuitState reports a circuit breaker transition.
	RecordCircuitState(name string, state CircuitState)
}

// CircuitState represents the state of a circuit breaker.
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

// String returns the string representation of the circuit state.
func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Outcome classifies err into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, apperrors.ErrInvalidOperation):
		return "invalid_operation"
	case errors.Is(err, apperrors.ErrAccountInactive):
		return "account_inactive"
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrForbidden):
		return "forbidden"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// NoOpCollector is a no-op implementation of MetricsCollector.
type NoOpCollector struct{}

// RecordLedgerOperation does nothing.
func (NoOpCollector) RecordLedgerOperation(operation string, outcome string, duration time.Duration) {
}

// RecordAmountMoved does nothing.
func (NoOpCollector) RecordAmountMoved(operation string, amount decimal.Decimal) {}

// RecordCircuitState does nothing.
func (NoOpCollector) RecordCircuitState(name string, state CircuitState) {}
