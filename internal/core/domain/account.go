package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the product type of a monetary account.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	return t == Savings || t == Checking
}

// Account represents a customer's monetary account within the core domain.
// Balance is never negative in a committed state.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	AccountNumber string          `json:"accountNumber"` // Unique, customer facing, immutable
	AccountType   AccountType     `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`   // Gates every balance mutation
	CustomerID    string          `json:"customerID"` // FK -> customers.customer_id
	OwnerName     string          `json:"ownerName"`  // Joined from customers, read only
	OwnerEmail    string          `json:"ownerEmail"` // Joined from customers, read only
	AuditFields
}

// CanDebit reports whether the account holds at least amount.
func (a Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
