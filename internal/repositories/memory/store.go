// Package memory is an in-process implementation of the repository ports.
// It offers the same locking contract as the postgres store: an account locked
// through a session stays locked until that session commits or rolls back,
// writes are staged and applied at commit, and readers only see committed state.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
)

// errSessionClosed is returned when a finished session is used again.
var errSessionClosed = errors.New("session already closed")

type storedTransaction struct {
	seq int64
	txn domain.Transaction
}

// Store holds every table of the ledger in memory.
type Store struct {
	mu           sync.RWMutex
	accounts     map[string]domain.Account // by account id
	byNumber     map[string]string         // account number -> account id
	rowLocks     map[string]chan struct{}  // by account id, capacity 1
	transactions []storedTransaction
	seq          int64
	users        map[string]domain.User // by email
	customers    map[string]domain.Customer
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts:  make(map[string]domain.Account),
		byNumber:  make(map[string]string),
		rowLocks:  make(map[string]chan struct{}),
		users:     make(map[string]domain.User),
		customers: make(map[string]domain.Customer),
	}
}

var (
	_ portsrepo.TransactionManager          = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade     = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade        = (*Store)(nil)
)

// NewRepositoryProvider exposes s through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       s,
		AccountRepo:     s,
		TransactionRepo: s,
		UserRepo:        s,
	}
}

// session is the in-memory unit of work.
type session struct {
	store    *Store
	mu       sync.Mutex
	held     map[string]chan struct{}  // account id -> row lock owned by this session
	balances map[string]domain.Account // staged copies of locked accounts
	appends  []domain.Transaction
	closed   bool
}

// Begin starts a new session. It takes no locks by itself.
func (s *Store) Begin(ctx context.Context) (portsrepo.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &session{
		store:    s,
		held:     make(map[string]chan struct{}),
		balances: make(map[string]domain.Account),
	}, nil
}

func asSession(s portsrepo.Session) (*session, error) {
	ms, ok := s.(*session)
	if !ok || ms == nil {
		return nil, fmt.Errorf("session of type %T was not opened by the memory store", s)
	}
	return ms, nil
}

// Commit applies staged balances and appends atomically, then releases every row lock.
func (ss *session) Commit(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return errSessionClosed
	}
	defer ss.release()

	st := ss.store
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, staged := range ss.balances {
		if staged.Balance.IsNegative() {
			return fmt.Errorf("balance of account %s would become negative", id)
		}
		if _, ok := st.accounts[id]; !ok {
			return fmt.Errorf("account %s vanished before commit", id)
		}
	}
	for _, txn := range ss.appends {
		if _, ok := st.accounts[txn.AccountID]; !ok {
			return fmt.Errorf("transaction %s references unknown account %s", txn.TransactionID, txn.AccountID)
		}
		if !txn.Amount.IsPositive() {
			return fmt.Errorf("transaction %s amount must be positive", txn.TransactionID)
		}
	}

	for id, staged := range ss.balances {
		acc := st.accounts[id]
		acc.Balance = staged.Balance
		acc.LastUpdatedAt = staged.LastUpdatedAt
		acc.LastUpdatedBy = staged.LastUpdatedBy
		st.accounts[id] = acc
	}
	for _, txn := range ss.appends {
		st.seq++
		txn.AccountNumber = st.accounts[txn.AccountID].AccountNumber
		st.transactions = append(st.transactions, storedTransaction{seq: st.seq, txn: txn})
	}
	return nil
}

// Rollback discards staged writes and releases every row lock. It is a no-op after Commit.
func (ss *session) Rollback(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return nil
	}
	ss.release()
	return nil
}

// release must be called with ss.mu held.
func (ss *session) release() {
	for id, lock := range ss.held {
		<-lock
		delete(ss.held, id)
	}
	ss.balances = nil
	ss.appends = nil
	ss.closed = true
}
