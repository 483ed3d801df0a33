package repositories

import (
	"context"
)

// Session is an open atomic unit of work. Account mutations and transaction
// appends issued against the same Session commit or roll back together.
type Session interface {
	// Commit makes every write issued through the session durable.
	Commit(ctx context.Context) error

	// Rollback discards the session's writes. It is safe to call after Commit.
	Rollback(ctx context.Context) error
}

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new atomic unit of work
	Begin(ctx context.Context) (Session, error)
}
