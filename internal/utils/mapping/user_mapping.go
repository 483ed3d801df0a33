package mapping

import (
	"database/sql"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	var customerID sql.NullString
	if d.CustomerID != nil {
		customerID = sql.NullString{String: *d.CustomerID, Valid: true}
	}
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		CustomerID:   customerID,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	var customerID *string
	if m.CustomerID.Valid {
		id := m.CustomerID.String
		customerID = &id
	}
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		CustomerID:   customerID,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Email:      m.Email,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainPrincipal builds the principal of user. customer is nil for staff.
func ToDomainPrincipal(user models.User, customer *models.Customer) domain.Principal {
	p := domain.Principal{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   domain.Role(user.Role),
	}
	if customer != nil {
		p.CustomerID = customer.CustomerID
		p.CustomerEmail = customer.Email
	}
	return p
}
