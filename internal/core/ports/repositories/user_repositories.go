package repositories

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
)

// PrincipalResolver resolves an authenticated identity (the user email) to a principal.
type PrincipalResolver interface {
	// ResolvePrincipal returns apperrors.ErrNotFound when no user has that identity.
	ResolvePrincipal(ctx context.Context, identity string) (*domain.Principal, error)
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByEmail retrieves the credential record of a user.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error
}

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by id.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	PrincipalResolver
	UserReader
	UserWriter
	CustomerReader
}
