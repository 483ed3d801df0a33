package dto

import (
	"time"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to provision an account for a customer.
type CreateAccountRequest struct {
	CustomerID  string             `json:"customerID" binding:"required,uuid"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CHECKING"`
}

// AccountResponse defines the data returned to an account owner.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	AccountNumber string             `json:"accountNumber"`
	AccountType   domain.AccountType `json:"accountType"`
	Balance       decimal.Decimal    `json:"balance"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// AdminAccountResponse adds owner data and status for administrators.
type AdminAccountResponse struct {
	AccountResponse
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
	IsActive   bool   `json:"isActive"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToAdminAccountResponse converts a domain.Account to the administrator view.
func ToAdminAccountResponse(acc *domain.Account) AdminAccountResponse {
	return AdminAccountResponse{
		AccountResponse: ToAccountResponse(acc),
		OwnerName:       acc.OwnerName,
		OwnerEmail:      acc.OwnerEmail,
		IsActive:        acc.IsActive,
	}
}

// ToListAdminAccountResponse converts accounts to the administrator view.
func ToListAdminAccountResponse(accounts []domain.Account) []AdminAccountResponse {
	res := make([]AdminAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAdminAccountResponse(&accounts[i])
	}
	return res
}
