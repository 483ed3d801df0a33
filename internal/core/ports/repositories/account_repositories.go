package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its customer facing account number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of all accounts with owner data.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListAccountsByCustomerID retrieves every account owned by a customer.
	ListAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A taken account number yields apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SetAccountActive sets the active flag unconditionally.
	SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error
}

// AccountTransactionSupport defines operations that run inside a Session
type AccountTransactionSupport interface {
	// LockAccountByNumber reads an account and holds its row lock until the session ends.
	LockAccountByNumber(ctx context.Context, s Session, accountNumber string) (*domain.Account, error)

	// UpdateAccountBalance writes the new balance of a locked account.
	UpdateAccountBalance(ctx context.Context, s Session, accountID string, balance decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
