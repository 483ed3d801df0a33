package mapping

import (
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		AccountNumber: d.AccountNumber,
		AccountType:   models.AccountType(d.AccountType),
		Balance:       d.Balance,
		IsActive:      d.IsActive,
		CustomerID:    d.CustomerID,
		OwnerName:     d.OwnerName,
		OwnerEmail:    d.OwnerEmail,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		AccountType:   domain.AccountType(m.AccountType),
		Balance:       m.Balance,
		IsActive:      m.IsActive,
		CustomerID:    m.CustomerID,
		OwnerName:     m.OwnerName,
		OwnerEmail:    m.OwnerEmail,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
