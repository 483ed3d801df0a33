package accounting_test

import (
	"testing"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransaction(t *testing.T) {
	start := decimal.RequireFromString("100.00")

	got, err := accounting.ApplyTransaction(start, domain.Transaction{Type: domain.Deposit, Amount: decimal.RequireFromString("25.50")})
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("125.50")))

	got, err = accounting.ApplyTransaction(start, domain.Transaction{Type: domain.TransferOut, Amount: decimal.RequireFromString("100")})
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = accounting.ApplyTransaction(start, domain.Transaction{Type: "REFUND", Amount: decimal.NewFromInt(1)})
	assert.Error(t, err)
}

func TestNetEffect_TransferPairIsZero(t *testing.T) {
	amount := decimal.RequireFromString("42.10")
	net, err := accounting.NetEffect([]domain.Transaction{
		{Type: domain.TransferOut, Amount: amount},
		{Type: domain.TransferIn, Amount: amount},
	})
	require.NoError(t, err)
	assert.True(t, net.IsZero())
}
