package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
)

// ResolvePrincipal builds the principal of the user with email identity.
func (s *Store) ResolvePrincipal(ctx context.Context, identity string) (*domain.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[identity]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	p := domain.Principal{UserID: user.UserID, Email: user.Email, Role: user.Role}
	if user.CustomerID != nil {
		if c, ok := s.customers[*user.CustomerID]; ok {
			p.CustomerID = c.CustomerID
			p.CustomerEmail = c.Email
		}
	}
	return &p, nil
}

// FindUserByEmail retrieves the credential record of a user.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

// SaveUser persists a new user.
func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.users[user.Email]; taken {
		return fmt.Errorf("%w: user %s already exists", apperrors.ErrDuplicate, user.Email)
	}
	if user.CustomerID != nil {
		if _, ok := s.customers[*user.CustomerID]; !ok {
			return fmt.Errorf("failed to save user %s: customer %s does not exist", user.UserID, *user.CustomerID)
		}
	}
	s.users[user.Email] = user
	return nil
}

// FindCustomerByID retrieves a customer by id.
func (s *Store) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

// SaveCustomer persists a customer. Customers are owned by identity management,
// so only fixtures and local seeding write them.
func (s *Store) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.customers[customer.CustomerID]; taken {
		return fmt.Errorf("%w: customer %s already exists", apperrors.ErrDuplicate, customer.CustomerID)
	}
	for _, c := range s.customers {
		if c.Email == customer.Email {
			return fmt.Errorf("%w: customer email %s already exists", apperrors.ErrDuplicate, customer.Email)
		}
	}
	s.customers[customer.CustomerID] = customer
	return nil
}
