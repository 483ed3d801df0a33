package resilience_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/platform/metrics"
	"github.com/SscSPs/corebank/internal/platform/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPrincipalResolver struct {
	mock.Mock
}

func (m *MockPrincipalResolver) ResolvePrincipal(ctx context.Context, identity string) (*domain.Principal, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

type recordingCollector struct {
	metrics.NoOpCollector
	states []metrics.CircuitState
}

func (c *recordingCollector) RecordCircuitState(name string, state metrics.CircuitState) {
	c.states = append(c.states, state)
}

func TestResolvePrincipal_PassesThrough(t *testing.T) {
	ctx := context.Background()
	next := new(MockPrincipalResolver)
	want := &domain.Principal{UserID: "u-1", Email: "teller@corebank.test", Role: domain.RoleTeller}
	next.On("ResolvePrincipal", ctx, want.Email).Return(want, nil).Once()

	r := resilience.NewResilientPrincipalResolver(next, resilience.BreakerConfig{Timeout: time.Minute, FailureThreshold: 2}, nil)
	got, err := r.ResolvePrincipal(ctx, want.Email)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	next.AssertExpectations(t)
}

func TestResolvePrincipal_NotFoundDoesNotTrip(t *testing.T) {
	ctx := context.Background()
	next := new(MockPrincipalResolver)
	next.On("ResolvePrincipal", ctx, "ghost@corebank.test").Return(nil, apperrors.ErrNotFound)

	r := resilience.NewResilientPrincipalResolver(next, resilience.BreakerConfig{Timeout: time.Minute, FailureThreshold: 2}, nil)
	for i := 0; i < 5; i++ {
		_, err := r.ResolvePrincipal(ctx, "ghost@corebank.test")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	}
	assert.Equal(t, metrics.CircuitClosed, r.State())
	next.AssertNumberOfCalls(t, "ResolvePrincipal", 5)
}

func TestResolvePrincipal_OpensAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()
	next := new(MockPrincipalResolver)
	next.On("ResolvePrincipal", ctx, "ana@corebank.test").Return(nil, assert.AnError)
	collector := &recordingCollector{}

	r := resilience.NewResilientPrincipalResolver(next, resilience.BreakerConfig{Timeout: time.Minute, FailureThreshold: 3}, collector)
	for i := 0; i < 3; i++ {
		_, err := r.ResolvePrincipal(ctx, "ana@corebank.test")
		assert.ErrorIs(t, err, assert.AnError)
	}
	assert.Equal(t, metrics.CircuitOpen, r.State())

	_, err := r.ResolvePrincipal(ctx, "ana@corebank.test")
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	next.AssertNumberOfCalls(t, "ResolvePrincipal", 3)
	assert.Equal(t, []metrics.CircuitState{metrics.CircuitOpen}, collector.states)
}
