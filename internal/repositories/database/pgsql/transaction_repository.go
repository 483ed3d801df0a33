package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/mapping"
	"github.com/SscSPs/corebank/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	t.seq, t.transaction_id, t.account_id, a.account_number, t.amount, t.transaction_type,
	t.description, t.performed_by, t.created_at
	FROM transactions t
	JOIN accounts a ON a.account_id = t.account_id`

// History pages are ordered by (created_at, seq) descending; the cursor holds the
// last row of the previous page, so the next page starts strictly below it.
const (
	transactionFirstPageQuery = `SELECT ` + transactionColumns + `
		WHERE t.account_id = $1
		ORDER BY t.created_at DESC, t.seq DESC
		LIMIT $2;`
	transactionNextPageQuery = `SELECT ` + transactionColumns + `
		WHERE t.account_id = $1 AND (t.created_at, t.seq) < ($2, $3)
		ORDER BY t.created_at DESC, t.seq DESC
		LIMIT $4;`
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// AppendTransactions inserts records within the given session using a single batch.
func (r *PgxTransactionRepository) AppendTransactions(ctx context.Context, s portsrepo.Session, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	tx, err := txFromSession(s)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (transaction_id, account_id, amount, transaction_type, description, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.AccountID,
			m.Amount,
			m.TransactionType,
			m.Description,
			m.PerformedBy,
			m.CreatedAt,
		)
	}

	// Close reports the first failed insert of the batch
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to append %d transactions: %w", len(transactions), err)
	}
	return nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	txns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.Seq,
			&m.TransactionID,
			&m.AccountID,
			&m.AccountNumber,
			&m.Amount,
			&m.TransactionType,
			&m.Description,
			&m.PerformedBy,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// ListTransactionsByAccountID returns every record of an account, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+transactionColumns+`
		WHERE t.account_id = $1
		ORDER BY t.created_at DESC, t.seq DESC;`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions of account %s: %w", accountID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// ListTransactionsByAccountIDPage returns one page of records using keyset pagination
// over (created_at, seq).
func (r *PgxTransactionRepository) ListTransactionsByAccountIDPage(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	var (
		rows pgx.Rows
		err  error
	)
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = r.Pool.Query(ctx, transactionNextPageQuery, accountID, cursor.CreatedAt, cursor.Seq, limit+1)
	} else {
		rows, err = r.Pool.Query(ctx, transactionFirstPageQuery, accountID, limit+1)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions page of account %s: %w", accountID, err)
	}

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.Seq)
		next = &token
	}
	return mapping.ToDomainTransactionSlice(txns), next, nil
}
