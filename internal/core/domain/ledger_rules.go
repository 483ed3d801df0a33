package domain

import (
	"strings"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DepositCheck is everything the deposit rules look at. Account and Performer
// are nil when the lookup found nothing.
type DepositCheck struct {
	Amount    decimal.Decimal
	Account   *Account
	Performer *Principal
}

// TransferCheck is the input of the transfer rules. Source, Destination and
// Performer are nil when the lookup found nothing.
type TransferCheck struct {
	Amount            decimal.Decimal
	SourceNumber      string
	DestinationNumber string
	Source            *Account
	Destination       *Account
	Performer         *Principal
}

// HistoryCheck is the input of the owner-only history rules.
type HistoryCheck struct {
	Account   *Account
	Requester *Principal
}

// DepositRequestRules only inspect the request and can run before any lookup.
var DepositRequestRules = []Rule[DepositCheck]{
	func(c DepositCheck) *RuleViolation {
		if !c.Amount.IsPositive() {
			return violation(apperrors.ErrInvalidAmount, "Deposit amount must be greater than zero")
		}
		return nil
	},
}

// DepositLockedRules extend the request rules with every check on the locked
// account. They can run before the performer is resolved.
var DepositLockedRules = append(append([]Rule[DepositCheck]{}, DepositRequestRules...),
	func(c DepositCheck) *RuleViolation {
		if c.Account == nil {
			return violation(apperrors.ErrNotFound, "Account not found")
		}
		return nil
	},
	func(c DepositCheck) *RuleViolation {
		if !c.Account.IsActive {
			return violation(apperrors.ErrAccountInactive, "Account is inactive. Deposits are blocked.")
		}
		return nil
	},
)

// DepositRules is the full deposit precondition list, in precedence order.
var DepositRules = append(append([]Rule[DepositCheck]{}, DepositLockedRules...),
	func(c DepositCheck) *RuleViolation {
		if c.Performer == nil {
			return violation(apperrors.ErrNotFound, "Performer not found")
		}
		return nil
	},
	func(c DepositCheck) *RuleViolation {
		if c.Performer.Role == RoleUser {
			return violation(apperrors.ErrForbidden, "Self-deposits are not allowed. Please visit a Teller.")
		}
		return nil
	},
)

// TransferRequestRules only inspect the request and can run before any lookup.
var TransferRequestRules = []Rule[TransferCheck]{
	func(c TransferCheck) *RuleViolation {
		if !c.Amount.IsPositive() {
			return violation(apperrors.ErrInvalidAmount, "Transfer amount must be greater than zero")
		}
		return nil
	},
	func(c TransferCheck) *RuleViolation {
		if c.SourceNumber == c.DestinationNumber {
			return violation(apperrors.ErrInvalidOperation, "Source and destination accounts must be different")
		}
		return nil
	},
}

// TransferLockedRules extend the request rules with every check on the two
// locked accounts. They can run before the performer is resolved.
var TransferLockedRules = append(append([]Rule[TransferCheck]{}, TransferRequestRules...),
	func(c TransferCheck) *RuleViolation {
		if c.Source == nil {
			return violation(apperrors.ErrNotFound, "Source account not found")
		}
		return nil
	},
	func(c TransferCheck) *RuleViolation {
		if c.Destination == nil {
			return violation(apperrors.ErrNotFound, "Destination account not found")
		}
		return nil
	},
	func(c TransferCheck) *RuleViolation {
		if !c.Source.IsActive {
			return violation(apperrors.ErrAccountInactive, "Source account is inactive. Transactions are blocked.")
		}
		return nil
	},
	func(c TransferCheck) *RuleViolation {
		if !c.Destination.IsActive {
			return violation(apperrors.ErrAccountInactive, "Destination account is inactive. Transactions are blocked.")
		}
		return nil
	},
	func(c TransferCheck) *RuleViolation {
		if !c.Source.CanDebit(c.Amount) {
			return violation(apperrors.ErrInsufficientFunds, "Insufficient funds. Balance: "+c.Source.Balance.StringFixed(2))
		}
		return nil
	},
)

// TransferRules is the full transfer precondition list, in precedence order.
var TransferRules = append(append([]Rule[TransferCheck]{}, TransferLockedRules...),
	func(c TransferCheck) *RuleViolation {
		if c.Performer == nil {
			return violation(apperrors.ErrNotFound, "Performer not found")
		}
		return nil
	},
)

// HistoryRules guard the owner-only history query.
var HistoryRules = []Rule[HistoryCheck]{
	func(c HistoryCheck) *RuleViolation {
		if c.Account == nil {
			return violation(apperrors.ErrNotFound, "Account not found")
		}
		return nil
	},
	func(c HistoryCheck) *RuleViolation {
		if c.Requester == nil {
			return violation(apperrors.ErrNotFound, "User not found")
		}
		return nil
	},
	func(c HistoryCheck) *RuleViolation {
		if !c.Requester.HasCustomer() || c.Requester.CustomerEmail != c.Account.OwnerEmail {
			return violation(apperrors.ErrForbidden, "You are not authorized to view this account history")
		}
		return nil
	},
}

// DescriptionOrDefault returns description, or DefaultDescription when it is blank.
func DescriptionOrDefault(description string) string {
	if strings.TrimSpace(description) == "" {
		return DefaultDescription
	}
	return description
}
