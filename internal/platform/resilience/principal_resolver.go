package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/platform/metrics"
	"github.com/sony/gobreaker"
)

const principalResolverName = "principal_resolver"

// BreakerConfig configures the circuit breaker.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval after which closed-state counts reset. Zero never resets.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32
}

// ResilientPrincipalResolver guards a PrincipalResolver with a circuit breaker.
// Lookups that find nothing count as successes: only infrastructure errors trip it.
type ResilientPrincipalResolver struct {
	next    portsrepo.PrincipalResolver
	cb      *gobreaker.CircuitBreaker
	metrics metrics.MetricsCollector
	logger  *slog.Logger
}

// NewResilientPrincipalResolver wraps next. collector may be nil.
func NewResilientPrincipalResolver(next portsrepo.PrincipalResolver, cfg BreakerConfig, collector metrics.MetricsCollector) *ResilientPrincipalResolver {
	if collector == nil {
		collector = metrics.NoOpCollector{}
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	r := &ResilientPrincipalResolver{
		next:    next,
		metrics: collector,
		logger:  slog.Default().With(slog.String("component", principalResolverName)),
	}

	r.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        principalResolverName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, apperrors.ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			r.logger.Warn("circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			var state metrics.CircuitState
			switch to {
			case gobreaker.StateClosed:
				state = metrics.CircuitClosed
			case gobreaker.StateHalfOpen:
				state = metrics.CircuitHalfOpen
			case gobreaker.StateOpen:
				state = metrics.CircuitOpen
			}
			r.metrics.RecordCircuitState(name, state)
		},
	})

	return r
}

var _ portsrepo.PrincipalResolver = (*ResilientPrincipalResolver)(nil)

// ResolvePrincipal calls the wrapped resolver unless the breaker is open, in which
// case it fails fast with apperrors.ErrUnavailable.
func (r *ResilientPrincipalResolver) ResolvePrincipal(ctx context.Context, identity string) (*domain.Principal, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.ResolvePrincipal(ctx, identity)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: principal lookup is failing fast", apperrors.ErrUnavailable)
		}
		return nil, err
	}
	principal, _ := result.(*domain.Principal)
	if principal == nil {
		return nil, apperrors.ErrNotFound
	}
	return principal, nil
}

// State reports the current breaker state.
func (r *ResilientPrincipalResolver) State() metrics.CircuitState {
	switch r.cb.State() {
	case gobreaker.StateOpen:
		return metrics.CircuitOpen
	case gobreaker.StateHalfOpen:
		return metrics.CircuitHalfOpen
	default:
		return metrics.CircuitClosed
	}
}
