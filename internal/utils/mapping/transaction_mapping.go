package mapping

import (
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Seq is assigned by the store.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		AccountNumber:   d.AccountNumber,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.Type),
		Description:     d.Description,
		PerformedBy:     d.PerformedBy,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.TransactionType),
		Description:   m.Description,
		PerformedBy:   m.PerformedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
