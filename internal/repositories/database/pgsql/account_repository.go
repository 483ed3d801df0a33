package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// accountColumns selects an account together with its owner.
const accountColumns = `
	a.account_id, a.account_number, a.account_type, a.balance, a.is_active, a.customer_id,
	c.name, c.email, a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
	FROM accounts a
	JOIN customers c ON c.customer_id = a.customer_id`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.AccountType,
		&m.Balance,
		&m.IsActive,
		&m.CustomerID,
		&m.OwnerName,
		&m.OwnerEmail,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, account_number, account_type, balance, is_active, customer_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.AccountNumber,
		m.AccountType,
		m.Balance,
		m.IsActive,
		m.CustomerID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := scanAccount(r.Pool.QueryRow(ctx, `SELECT `+accountColumns+` WHERE a.account_id = $1;`, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return &acc, nil
}

// FindAccountByNumber retrieves an account by its account number without locking it.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	acc, err := scanAccount(r.Pool.QueryRow(ctx, `SELECT `+accountColumns+` WHERE a.account_number = $1;`, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by number %s: %w", accountNumber, err)
	}
	return &acc, nil
}

// ListAccounts retrieves a paginated list of all accounts, newest first.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+`
		ORDER BY a.created_at DESC, a.account_number
		LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return collectAccounts(rows)
}

// ListAccountsByCustomerID retrieves every account owned by a customer.
func (r *PgxAccountRepository) ListAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+`
		WHERE a.customer_id = $1
		ORDER BY a.created_at;`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts of customer %s: %w", customerID, err)
	}
	return collectAccounts(rows)
}

// SetAccountActive sets the active flag of an account.
func (r *PgxAccountRepository) SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, active, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set active=%t on account %s: %w", active, accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockAccountByNumber reads an account and holds its row lock until the session ends.
// Must be called within a session.
func (r *PgxAccountRepository) LockAccountByNumber(ctx context.Context, s portsrepo.Session, accountNumber string) (*domain.Account, error) {
	tx, err := txFromSession(s)
	if err != nil {
		return nil, err
	}
	acc, err := scanAccount(tx.QueryRow(ctx, `SELECT `+accountColumns+`
		WHERE a.account_number = $1
		FOR UPDATE OF a;`, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountNumber, err)
	}
	return &acc, nil
}

// UpdateAccountBalance writes the new balance of an account locked in the same session.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, s portsrepo.Session, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	tx, err := txFromSession(s)
	if err != nil {
		return err
	}
	query := `
		UPDATE accounts
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, accountID, balance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountID)
	}
	return nil
}
