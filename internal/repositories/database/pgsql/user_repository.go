package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// ResolvePrincipal loads the user with email identity and its customer profile, if any.
func (r *PgxUserRepository) ResolvePrincipal(ctx context.Context, identity string) (*domain.Principal, error) {
	query := `
		SELECT u.user_id, u.email, u.role, u.customer_id, c.customer_id, c.name, c.email
		FROM users u
		LEFT JOIN customers c ON c.customer_id = u.customer_id
		WHERE u.email = $1;
	`
	var user models.User
	var custID, custName, custEmail sql.NullString
	err := r.db.QueryRow(ctx, query, identity).Scan(
		&user.UserID,
		&user.Email,
		&user.Role,
		&user.CustomerID,
		&custID,
		&custName,
		&custEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}

	var customer *models.Customer
	if custID.Valid {
		customer = &models.Customer{CustomerID: custID.String, Name: custName.String, Email: custEmail.String}
	}
	principal := mapping.ToDomainPrincipal(user, customer)
	return &principal, nil
}

// FindUserByEmail retrieves the credential record of a user.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, password_hash, role, customer_id, created_at
		FROM users
		WHERE email = $1;
	`
	var m models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.CustomerID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, email, password_hash, role, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.PasswordHash,
		m.Role,
		m.CustomerID,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by id.
func (r *PgxUserRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, created_at
		FROM customers
		WHERE customer_id = $1;
	`
	var m models.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(&m.CustomerID, &m.Name, &m.Email, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}
