package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/corebank/internal/apperrors"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// pgxSession adapts a pgx.Tx to the store-agnostic Session.
type pgxSession struct {
	tx pgx.Tx
}

func (s *pgxSession) Commit(ctx context.Context) error {
	if err := s.tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

func (s *pgxSession) Rollback(ctx context.Context) error {
	if err := s.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// Begin starts a new database transaction at the pool's default (read committed) isolation.
func (r *BaseRepository) Begin(ctx context.Context) (portsrepo.Session, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return &pgxSession{tx: tx}, nil
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// txFromSession unwraps the pgx transaction of a session opened by BaseRepository.Begin.
func txFromSession(s portsrepo.Session) (pgx.Tx, error) {
	ps, ok := s.(*pgxSession)
	if !ok || ps == nil {
		return nil, fmt.Errorf("session of type %T was not opened by the postgres store", s)
	}
	return ps.tx, nil
}

// isUniqueViolation reports whether err is a postgres unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
