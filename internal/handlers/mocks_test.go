package handlers_test

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

func (m *MockLedgerService) Deposit(ctx context.Context, req dto.DepositRequest, identity string) (*domain.TransactionView, error) {
	args := m.Called(ctx, req, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionView), args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, req dto.TransferRequest, identity string) ([]domain.TransactionView, error) {
	args := m.Called(ctx, req, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionView), args.Error(1)
}

func (m *MockLedgerService) GetAccountHistory(ctx context.Context, accountNumber string, identity string) ([]domain.TransactionView, error) {
	args := m.Called(ctx, accountNumber, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionView), args.Error(1)
}

func (m *MockLedgerService) GetAccountHistoryForAdmin(ctx context.Context, accountNumber string) ([]domain.TransactionView, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionView), args.Error(1)
}

func (m *MockLedgerService) ListAccountHistoryPage(ctx context.Context, accountNumber string, identity string, limit int, nextToken *string) ([]domain.TransactionView, *string, error) {
	args := m.Called(ctx, accountNumber, identity, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.TransactionView), returnedNextToken, args.Error(2)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvc = (*MockAccountService)(nil)

func (m *MockAccountService) ListAllAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListMyAccounts(ctx context.Context, identity string) ([]domain.Account, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ProvisionAccount(ctx context.Context, req dto.CreateAccountRequest, performerID string) (*domain.Account, error) {
	args := m.Called(ctx, req, performerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, performerID string) error {
	args := m.Called(ctx, accountID, performerID)
	return args.Error(0)
}

func (m *MockAccountService) ActivateAccount(ctx context.Context, accountID string, performerID string) error {
	args := m.Called(ctx, accountID, performerID)
	return args.Error(0)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) SeedAdmin(ctx context.Context, email string, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// --- Mock PrincipalResolver ---
type MockPrincipalResolver struct {
	mock.Mock
}

func (m *MockPrincipalResolver) ResolvePrincipal(ctx context.Context, identity string) (*domain.Principal, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}
