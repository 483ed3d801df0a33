package dto

import (
	"time"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest defines the data needed to deposit into an account.
// Amount carries no binding tag; the ledger rejects zero or negative values.
type DepositRequest struct {
	AccountNumber string          `json:"accountNumber" binding:"required,accountnumber"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" binding:"max=255"` // Optional
}

// TransferRequest defines the data needed to move money between two accounts.
type TransferRequest struct {
	SourceAccountNumber      string          `json:"sourceAccountNumber" binding:"required,accountnumber"`
	DestinationAccountNumber string          `json:"destinationAccountNumber" binding:"required,accountnumber"`
	Amount                   decimal.Decimal `json:"amount"`
	Description              string          `json:"description" binding:"max=255"` // Optional
}

// TransactionResponse defines the data returned for one ledger record.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Description   string                 `json:"description"`
	CreatedAt     time.Time              `json:"createdAt"`
	AccountNumber string                 `json:"accountNumber"`
	NewBalance    decimal.Decimal        `json:"newBalance"`
}

// ListTransactionsParams defines query parameters for the paged history.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps one page of history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.TransactionView to its DTO.
func ToTransactionResponse(v domain.TransactionView) TransactionResponse {
	return TransactionResponse{
		TransactionID: v.TransactionID,
		Amount:        v.Amount,
		Type:          v.Type,
		Description:   v.Description,
		CreatedAt:     v.CreatedAt,
		AccountNumber: v.AccountNumber,
		NewBalance:    v.NewBalance,
	}
}

// ToListTransactionResponse converts a slice of views, keeping their order.
func ToListTransactionResponse(views []domain.TransactionView) []TransactionResponse {
	res := make([]TransactionResponse, len(views))
	for i, v := range views {
		res[i] = ToTransactionResponse(v)
	}
	return res
}
