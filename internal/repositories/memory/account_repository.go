package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// withOwner fills the joined customer columns. Callers hold s.mu.
func (s *Store) withOwner(acc domain.Account) domain.Account {
	if c, ok := s.customers[acc.CustomerID]; ok {
		acc.OwnerName = c.Name
		acc.OwnerEmail = c.Email
	}
	return acc
}

// SaveAccount persists a new account.
func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byNumber[account.AccountNumber]; taken {
		return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
	}
	if _, taken := s.accounts[account.AccountID]; taken {
		return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	if _, ok := s.customers[account.CustomerID]; !ok {
		return fmt.Errorf("failed to save account %s: customer %s does not exist", account.AccountID, account.CustomerID)
	}
	if account.Balance.IsNegative() {
		return fmt.Errorf("failed to save account %s: negative balance", account.AccountID)
	}

	account.OwnerName, account.OwnerEmail = "", ""
	s.accounts[account.AccountID] = account
	s.byNumber[account.AccountNumber] = account.AccountID
	s.rowLocks[account.AccountID] = make(chan struct{}, 1)
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	acc = s.withOwner(acc)
	return &acc, nil
}

// FindAccountByNumber retrieves an account by its account number.
func (s *Store) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byNumber[accountNumber]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	acc := s.withOwner(s.accounts[id])
	return &acc, nil
}

// ListAccounts returns accounts newest first.
func (s *Store) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	s.mu.RLock()
	all := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		all = append(all, s.withOwner(acc))
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].AccountNumber < all[j].AccountNumber
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []domain.Account{}, nil
	}
	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// ListAccountsByCustomerID returns the accounts of a customer, oldest first.
func (s *Store) ListAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	s.mu.RLock()
	out := []domain.Account{}
	for _, acc := range s.accounts {
		if acc.CustomerID == customerID {
			out = append(out, s.withOwner(acc))
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].AccountNumber < out[j].AccountNumber
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// SetAccountActive sets the active flag. Like a row update it waits for any
// session currently holding the account.
func (s *Store) SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error {
	s.mu.RLock()
	lock, ok := s.rowLocks[accountID]
	s.mu.RUnlock()
	if !ok {
		return apperrors.ErrNotFound
	}

	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-lock }()

	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accounts[accountID]
	acc.IsActive = active
	acc.LastUpdatedAt = now
	acc.LastUpdatedBy = userID
	s.accounts[accountID] = acc
	return nil
}

// LockAccountByNumber acquires the account's row lock for the session and returns
// its committed state overlaid with the session's own staged writes.
func (s *Store) LockAccountByNumber(ctx context.Context, sess portsrepo.Session, accountNumber string) (*domain.Account, error) {
	ss, err := asSession(sess)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	id, ok := s.byNumber[accountNumber]
	lock := s.rowLocks[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	ss.mu.Lock()
	if ss.closed {
		ss.mu.Unlock()
		return nil, errSessionClosed
	}
	_, alreadyHeld := ss.held[id]
	ss.mu.Unlock()

	if !alreadyHeld {
		select {
		case lock <- struct{}{}:
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to lock account %s: %w", accountNumber, ctx.Err())
		}
		ss.mu.Lock()
		if ss.closed {
			ss.mu.Unlock()
			<-lock
			return nil, errSessionClosed
		}
		ss.held[id] = lock
		ss.mu.Unlock()
	}

	s.mu.RLock()
	acc := s.withOwner(s.accounts[id])
	s.mu.RUnlock()

	ss.mu.Lock()
	if staged, ok := ss.balances[id]; ok {
		acc.Balance = staged.Balance
		acc.LastUpdatedAt = staged.LastUpdatedAt
		acc.LastUpdatedBy = staged.LastUpdatedBy
	}
	ss.mu.Unlock()
	return &acc, nil
}

// UpdateAccountBalance stages the new balance of an account locked by the session.
func (s *Store) UpdateAccountBalance(ctx context.Context, sess portsrepo.Session, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	ss, err := asSession(sess)
	if err != nil {
		return err
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return errSessionClosed
	}
	if _, held := ss.held[accountID]; !held {
		return fmt.Errorf("account %s must be locked before its balance is updated", accountID)
	}

	staged, ok := ss.balances[accountID]
	if !ok {
		s.mu.RLock()
		staged = s.accounts[accountID]
		s.mu.RUnlock()
	}
	staged.Balance = balance
	staged.LastUpdatedAt = now
	staged.LastUpdatedBy = userID
	ss.balances[accountID] = staged
	return nil
}
