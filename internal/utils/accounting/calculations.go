package accounting

import (
	"fmt"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the effect of a transaction leg on its account's balance.
// DEPOSIT and TRANSFER_IN credit the account, TRANSFER_OUT debits it.
func SignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.Deposit, domain.TransferIn:
		return txn.Amount, nil
	case domain.TransferOut:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type: %s", txn.Type)
	}
}

// ApplyTransaction returns balance after txn is applied.
func ApplyTransaction(balance decimal.Decimal, txn domain.Transaction) (decimal.Decimal, error) {
	signed, err := SignedAmount(txn)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Add(signed), nil
}

// NetEffect sums the signed effect of txns, used to check that a transfer conserves money.
func NetEffect(txns []domain.Transaction) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, txn := range txns {
		signed, err := SignedAmount(txn)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(signed)
	}
	return total, nil
}
