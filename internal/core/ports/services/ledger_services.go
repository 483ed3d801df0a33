package services

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/dto"
)

// LedgerMutatorSvc defines the balance-changing operations of the ledger.
// identity is the authenticated user email the operation is performed for.
type LedgerMutatorSvc interface {
	// Deposit credits an account and records a DEPOSIT. Only TELLER and ADMIN may deposit.
	Deposit(ctx context.Context, req dto.DepositRequest, identity string) (*domain.TransactionView, error)

	// Transfer moves money between two accounts and returns the source view first.
	Transfer(ctx context.Context, req dto.TransferRequest, identity string) ([]domain.TransactionView, error)
}

// LedgerReaderSvc defines the read-only history queries.
type LedgerReaderSvc interface {
	// GetAccountHistory returns the full history of an account owned by the requester.
	GetAccountHistory(ctx context.Context, accountNumber string, identity string) ([]domain.TransactionView, error)

	// GetAccountHistoryForAdmin returns the full history of any account.
	GetAccountHistoryForAdmin(ctx context.Context, accountNumber string) ([]domain.TransactionView, error)

	// ListAccountHistoryPage returns one page of an owned account's history and the next page token.
	ListAccountHistoryPage(ctx context.Context, accountNumber string, identity string, limit int, nextToken *string) ([]domain.TransactionView, *string, error)
}

// LedgerSvc combines the ledger service interfaces
type LedgerSvc interface {
	LedgerMutatorSvc
	LedgerReaderSvc
}
