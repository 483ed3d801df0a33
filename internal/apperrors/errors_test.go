package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("lock rows: %w", apperrors.ErrNotFound)
	err := apperrors.NewAppError(500, "failed to lock accounts", cause)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "failed to lock accounts: lock rows: resource not found", err.Error())
}

func TestAppError_NilCause(t *testing.T) {
	err := apperrors.NewAppError(400, "invalid nextToken", nil)
	assert.Equal(t, "invalid nextToken", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestIsBusiness(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", apperrors.ErrNotFound, true},
		{"wrapped insufficient funds", fmt.Errorf("transfer: %w", apperrors.ErrInsufficientFunds), true},
		{"forbidden", apperrors.ErrForbidden, true},
		{"unavailable is infrastructure", apperrors.ErrUnavailable, false},
		{"plain error", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.IsBusiness(tt.err))
		})
	}
}
