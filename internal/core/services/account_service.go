package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/utils"
	"github.com/SscSPs/corebank/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxAccountNumberAttempts bounds the retries on an account number collision.
const maxAccountNumberAttempts = 5

// accountService implements the AccountSvc interface
type accountService struct {
	BaseService
	accountRepo    portsrepo.AccountRepositoryFacade
	customerRepo   portsrepo.CustomerReader
	principals     portsrepo.PrincipalResolver
	generateNumber func() (string, error)
	now            func() time.Time
}

// AccountOption is a functional option for configuring the account service
type AccountOption func(*accountService)

// WithAccountNumberGenerator replaces the random account number generator.
func WithAccountNumberGenerator(gen func() (string, error)) AccountOption {
	return func(s *accountService) {
		s.generateNumber = gen
	}
}

// WithAccountPrincipalResolver overrides the resolver taken from the user repository.
func WithAccountPrincipalResolver(resolver portsrepo.PrincipalResolver) AccountOption {
	return func(s *accountService) {
		s.principals = resolver
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, options ...AccountOption) portssvc.AccountSvc {
	svc := &accountService{
		accountRepo:    accountRepo,
		customerRepo:   userRepo,
		principals:     userRepo,
		generateNumber: utils.GenerateAccountNumber,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvc interface
var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) ListAllAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if offset < 0 {
		offset = 0
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, pagination.NormalizeLimit(limit), offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) ListMyAccounts(ctx context.Context, identity string) ([]domain.Account, error) {
	principal, err := s.principals.ResolvePrincipal(ctx, identity)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to resolve principal")
		return nil, err
	}
	if !principal.HasCustomer() {
		return []domain.Account{}, nil
	}
	accounts, err := s.accountRepo.ListAccountsByCustomerID(ctx, principal.CustomerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer accounts", slog.String("customer_id", principal.CustomerID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) ProvisionAccount(ctx context.Context, req dto.CreateAccountRequest, performerID string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find customer", slog.String("customer_id", req.CustomerID))
		return nil, err
	}

	now := s.now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		AccountType: req.AccountType,
		Balance:     decimal.Zero,
		IsActive:    true,
		CustomerID:  customer.CustomerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     performerID,
			LastUpdatedAt: now,
			LastUpdatedBy: performerID,
		},
	}

	for attempt := 1; attempt <= maxAccountNumberAttempts; attempt++ {
		account.AccountNumber, err = s.generateNumber()
		if err != nil {
			s.LogError(ctx, err, "Failed to generate account number")
			return nil, err
		}

		err = s.accountRepo.SaveAccount(ctx, account)
		if err == nil {
			account.OwnerName = customer.Name
			account.OwnerEmail = customer.Email
			s.LogInfo(ctx, "Account provisioned",
				slog.String("account_id", account.AccountID),
				slog.String("account_number", account.AccountNumber),
				slog.String("customer_id", customer.CustomerID))
			return &account, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
			return nil, err
		}
		s.LogDebug(ctx, "Account number collision", slog.Int("attempt", attempt))
	}

	err = fmt.Errorf("%w: no free account number after %d attempts", apperrors.ErrConflict, maxAccountNumberAttempts)
	s.LogError(ctx, err, "Failed to provision account", slog.String("customer_id", customer.CustomerID))
	return nil, err
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, performerID string) error {
	return s.setActive(ctx, accountID, false, performerID)
}

func (s *accountService) ActivateAccount(ctx context.Context, accountID string, performerID string) error {
	return s.setActive(ctx, accountID, true, performerID)
}

// setActive is idempotent: repeating it leaves the flag as requested.
func (s *accountService) setActive(ctx context.Context, accountID string, active bool, performerID string) error {
	if err := s.accountRepo.SetAccountActive(ctx, accountID, active, performerID, s.now()); err != nil {
		s.LogFailure(ctx, err, "Failed to change account status",
			slog.String("account_id", accountID),
			slog.Bool("active", active))
		return err
	}
	s.LogInfo(ctx, "Account status changed",
		slog.String("account_id", accountID),
		slog.Bool("active", active),
		slog.String("performed_by", performerID))
	return nil
}
