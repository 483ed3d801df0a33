package models

import (
	"github.com/shopspring/decimal"
)

// AccountType is the stored product type of an account.
type AccountType string

// Account is a row of the accounts table joined with its owning customer.
type Account struct {
	AccountID     string          `db:"account_id"`
	AccountNumber string          `db:"account_number"`
	AccountType   AccountType     `db:"account_type"`
	Balance       decimal.Decimal `db:"balance"` // numeric(38,2), CHECK >= 0
	IsActive      bool            `db:"is_active"`
	CustomerID    string          `db:"customer_id"`
	OwnerName     string          `db:"owner_name"`  // customers.name
	OwnerEmail    string          `db:"owner_email"` // customers.email
	AuditFields
}
