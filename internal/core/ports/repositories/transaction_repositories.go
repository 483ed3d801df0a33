package repositories

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
)

// TransactionReader defines read operations for the transaction log
type TransactionReader interface {
	// ListTransactionsByAccountID returns every record of an account, newest first.
	ListTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// ListTransactionsByAccountIDPage returns one page of records, newest first, and the
	// token of the next page (nil on the last page).
	ListTransactionsByAccountIDPage(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines the append-only write side of the transaction log
type TransactionWriter interface {
	// AppendTransactions inserts records within the given session.
	AppendTransactions(ctx context.Context, s Session, transactions []domain.Transaction) error
}

// TransactionRepositoryFacade combines the transaction log interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
