package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the stored leg type of a transaction row.
type TransactionType string

// Transaction is a row of the append-only transactions table.
type Transaction struct {
	Seq             int64           `db:"seq"` // identity column, tie breaker for ordering
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	AccountNumber   string          `db:"account_number"` // joined from accounts
	Amount          decimal.Decimal `db:"amount"`         // numeric(38,2), CHECK > 0
	TransactionType TransactionType `db:"transaction_type"`
	Description     string          `db:"description"`
	PerformedBy     string          `db:"performed_by"`
	CreatedAt       time.Time       `db:"created_at"`
}
