package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/utils/pagination"
)

// AppendTransactions stages records; they become visible when the session commits.
func (s *Store) AppendTransactions(ctx context.Context, sess portsrepo.Session, transactions []domain.Transaction) error {
	ss, err := asSession(sess)
	if err != nil {
		return err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return errSessionClosed
	}
	ss.appends = append(ss.appends, transactions...)
	return nil
}

// accountTransactions returns the committed records of an account, newest first.
func (s *Store) accountTransactions(accountID string) []storedTransaction {
	s.mu.RLock()
	out := []storedTransaction{}
	for _, st := range s.transactions {
		if st.txn.AccountID == accountID {
			out = append(out, st)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].txn.CreatedAt.Equal(out[j].txn.CreatedAt) {
			return out[i].seq > out[j].seq
		}
		return out[i].txn.CreatedAt.After(out[j].txn.CreatedAt)
	})
	return out
}

// ListTransactionsByAccountID returns every record of an account, newest first.
func (s *Store) ListTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	stored := s.accountTransactions(accountID)
	txns := make([]domain.Transaction, len(stored))
	for i, st := range stored {
		txns[i] = st.txn
	}
	return txns, nil
}

// ListTransactionsByAccountIDPage returns one page of records, newest first.
func (s *Store) ListTransactionsByAccountIDPage(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	stored := s.accountTransactions(accountID)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		start := len(stored)
		for i, st := range stored {
			if cursor.After(st.txn.CreatedAt, st.seq) {
				start = i
				break
			}
		}
		stored = stored[start:]
	}

	var next *string
	if len(stored) > limit {
		stored = stored[:limit]
		last := stored[len(stored)-1]
		token := pagination.EncodeToken(last.txn.CreatedAt, last.seq)
		next = &token
	}

	txns := make([]domain.Transaction, len(stored))
	for i, st := range stored {
		txns[i] = st.txn
	}
	return txns, next, nil
}
