package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies which leg of a balance mutation a record describes.
type TransactionType string

const (
	Deposit     TransactionType = "DEPOSIT"
	TransferOut TransactionType = "TRANSFER_OUT"
	TransferIn  TransactionType = "TRANSFER_IN"
)

// DefaultDescription is stored when the caller leaves the description blank.
const DefaultDescription = "sin descripcion"

// Transaction is an immutable audit entry for one account leg of a deposit or transfer.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	AccountID     string          `json:"accountID"`     // FK -> accounts.account_id
	AccountNumber string          `json:"accountNumber"` // Denormalised for views
	Amount        decimal.Decimal `json:"amount"`        // Always positive
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	PerformedBy   string          `json:"performedBy"` // FK -> users.user_id
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionView is a transaction annotated with the balance reported alongside it.
type TransactionView struct {
	Transaction
	NewBalance decimal.Decimal `json:"newBalance"`
}
