package services

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// ListAllAccounts returns a page of every account with owner data.
	ListAllAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListMyAccounts returns the accounts of the caller's customer profile.
	ListMyAccounts(ctx context.Context, identity string) ([]domain.Account, error)
}

// AccountAdminSvc defines administrative write operations
type AccountAdminSvc interface {
	// ProvisionAccount opens a zero-balance account for an existing customer.
	ProvisionAccount(ctx context.Context, req dto.CreateAccountRequest, performerID string) (*domain.Account, error)

	// DeactivateAccount blocks every balance mutation on the account.
	DeactivateAccount(ctx context.Context, accountID string, performerID string) error

	// ActivateAccount lifts the block set by DeactivateAccount.
	ActivateAccount(ctx context.Context, accountID string, performerID string) error
}

// AccountSvc combines all account-related service interfaces
type AccountSvc interface {
	AccountReaderSvc
	AccountAdminSvc
}
