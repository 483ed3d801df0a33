package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/handlers"
	"github.com/SscSPs/corebank/internal/platform/config"
	"github.com/SscSPs/corebank/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	tellerEmail = "teller@corebank.test"
	adminEmail  = "admin@corebank.test"
	userEmail   = "user@corebank.test"
)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	cfg        *config.Config
	router     *gin.Engine
	ledger     *MockLedgerService
	accounts   *MockAccountService
	auth       *MockAuthService
	principals *MockPrincipalResolver
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "corebank-test",
		RateLimit:         "1000-M",
		FrontendBaseURL:   "http://localhost:3000",
		IsProduction:      true,
	}
	suite.ledger = new(MockLedgerService)
	suite.accounts = new(MockAccountService)
	suite.auth = new(MockAuthService)
	suite.principals = new(MockPrincipalResolver)
	suite.router = suite.newRouter()
}

func (suite *HandlersTestSuite) newRouter() *gin.Engine {
	r := gin.New()
	err := handlers.RegisterRoutes(r, suite.cfg, &portssvc.ServiceContainer{
		Ledger:  suite.ledger,
		Account: suite.accounts,
		Auth:    suite.auth,
	}, handlers.RouteDeps{Principals: suite.principals})
	suite.Require().NoError(err)
	return r
}

func (suite *HandlersTestSuite) token(identity string) string {
	token, _, err := utils.GenerateJWT(identity, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *HandlersTestSuite) do(method, path, identity string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if identity != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token(identity))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func violation(sentinel error, message string) error {
	return &domain.RuleViolation{Err: sentinel, Message: message}
}

// --- Deposit ---

func (suite *HandlersTestSuite) TestDeposit_Created() {
	view := &domain.TransactionView{
		Transaction: domain.Transaction{
			TransactionID: "t-1",
			AccountNumber: "1000000001",
			Amount:        decimal.NewFromInt(50),
			Type:          domain.Deposit,
			Description:   domain.DefaultDescription,
			CreatedAt:     time.Now(),
		},
		NewBalance: decimal.NewFromInt(150),
	}
	suite.ledger.On("Deposit", mock.Anything, mock.MatchedBy(func(r dto.DepositRequest) bool {
		return r.AccountNumber == "1000000001" && r.Amount.Equal(decimal.NewFromInt(50))
	}), tellerEmail).Return(view, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", tellerEmail,
		map[string]any{"accountNumber": "1000000001", "amount": 50})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("t-1", resp.TransactionID)
	suite.True(resp.NewBalance.Equal(decimal.NewFromInt(150)))
	suite.Equal(domain.Deposit, resp.Type)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestDeposit_RuleViolationStatuses() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"forbidden", violation(apperrors.ErrForbidden, "Self-deposits are not allowed. Please visit a Teller."), http.StatusForbidden, "Self-deposits are not allowed. Please visit a Teller."},
		{"not found", violation(apperrors.ErrNotFound, "Account not found"), http.StatusNotFound, "Account not found"},
		{"inactive", violation(apperrors.ErrAccountInactive, "Account is inactive. Deposits are blocked."), http.StatusBadRequest, "Account is inactive. Deposits are blocked."},
		{"invalid amount", violation(apperrors.ErrInvalidAmount, "Deposit amount must be greater than zero"), http.StatusBadRequest, "Deposit amount must be greater than zero"},
		{"unavailable", apperrors.ErrUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"infrastructure", errors.New("connection reset by peer"), http.StatusInternalServerError, "Failed to process deposit"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.ledger.On("Deposit", mock.Anything, mock.Anything, tellerEmail).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", tellerEmail,
				map[string]any{"accountNumber": "1000000001", "amount": "10.00"})

			suite.Equal(tt.status, w.Code)
			suite.Equal(tt.message, suite.errorBody(w))
		})
	}
}

func (suite *HandlersTestSuite) TestDeposit_MalformedAccountNumber() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", tellerEmail,
		map[string]any{"accountNumber": "12-AB", "amount": 10})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestMutations_RejectOverlongDescription() {
	description := strings.Repeat("d", 256)

	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", tellerEmail,
		map[string]any{"accountNumber": "1000000001", "amount": 10, "description": description})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/transactions/transfer", userEmail, map[string]any{
		"sourceAccountNumber": "1000000001", "destinationAccountNumber": "2000000002", "amount": 10, "description": description,
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.ledger.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
	suite.ledger.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestDeposit_DescriptionAtColumnLimit() {
	description := strings.Repeat("d", 255)
	suite.ledger.On("Deposit", mock.Anything, mock.MatchedBy(func(r dto.DepositRequest) bool {
		return r.Description == description
	}), tellerEmail).Return(&domain.TransactionView{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", tellerEmail,
		map[string]any{"accountNumber": "1000000001", "amount": 10, "description": description})

	suite.Equal(http.StatusCreated, w.Code)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestDeposit_RequiresToken() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", "",
		map[string]any{"accountNumber": "1000000001", "amount": 10})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestDeposit_RateLimited() {
	suite.cfg.RateLimit = "2-M"
	suite.router = suite.newRouter()
	suite.ledger.On("Deposit", mock.Anything, mock.Anything, tellerEmail).Return(&domain.TransactionView{}, nil).Twice()

	body := map[string]any{"accountNumber": "1000000001", "amount": 1}
	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/transactions/deposit", tellerEmail, body).Code)
	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/transactions/deposit", tellerEmail, body).Code)
	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", tellerEmail, body)

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.ledger.AssertExpectations(suite.T())
}

// --- Transfer ---

func (suite *HandlersTestSuite) TestTransfer_InsufficientFunds() {
	suite.ledger.On("Transfer", mock.Anything, mock.Anything, userEmail).
		Return(nil, violation(apperrors.ErrInsufficientFunds, "Insufficient funds. Balance: 150.00")).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/transfer", userEmail, map[string]any{
		"sourceAccountNumber": "1000000001", "destinationAccountNumber": "2000000002", "amount": 200,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Insufficient funds. Balance: 150.00", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestTransfer_ReturnsBothLegs() {
	views := []domain.TransactionView{
		{Transaction: domain.Transaction{TransactionID: "out", Type: domain.TransferOut, AccountNumber: "1000000001"}, NewBalance: decimal.NewFromInt(100)},
		{Transaction: domain.Transaction{TransactionID: "in", Type: domain.TransferIn, AccountNumber: "2000000002"}, NewBalance: decimal.NewFromInt(50)},
	}
	suite.ledger.On("Transfer", mock.Anything, mock.MatchedBy(func(r dto.TransferRequest) bool {
		return r.Description == "rent"
	}), userEmail).Return(views, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/transfer", userEmail, map[string]any{
		"sourceAccountNumber": "1000000001", "destinationAccountNumber": "2000000002", "amount": 50, "description": "rent",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("out", resp[0].TransactionID)
	suite.Equal(domain.TransferIn, resp[1].Type)
}

// --- History ---

func (suite *HandlersTestSuite) TestHistory_FullAndPaged() {
	views := []domain.TransactionView{{Transaction: domain.Transaction{TransactionID: "t-1"}}}
	suite.ledger.On("GetAccountHistory", mock.Anything, "1000000001", userEmail).Return(views, nil).Once()
	suite.ledger.On("ListAccountHistoryPage", mock.Anything, "1000000001", userEmail, 1, (*string)(nil)).Return(views, "next-1", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/history/1000000001", userEmail, nil)
	suite.Equal(http.StatusOK, w.Code)
	var full []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &full))
	suite.Len(full, 1)

	w = suite.do(http.MethodGet, "/api/v1/transactions/history/1000000001?limit=1", userEmail, nil)
	suite.Equal(http.StatusOK, w.Code)
	var page dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	suite.Len(page.Transactions, 1)
	suite.Require().NotNil(page.NextToken)
	suite.Equal("next-1", *page.NextToken)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestHistory_NotOwner() {
	suite.ledger.On("GetAccountHistory", mock.Anything, "1000000001", userEmail).
		Return(nil, violation(apperrors.ErrForbidden, "You are not authorized to view this account history")).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/history/1000000001", userEmail, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Accounts ---

func (suite *HandlersTestSuite) TestListMyAccounts() {
	suite.accounts.On("ListMyAccounts", mock.Anything, userEmail).
		Return([]domain.Account{{AccountID: "a-1", AccountNumber: "1000000001", Balance: decimal.NewFromInt(5)}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/me", userEmail, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("1000000001", resp[0].AccountNumber)
}

// --- Admin ---

func (suite *HandlersTestSuite) asAdmin() {
	suite.principals.On("ResolvePrincipal", mock.Anything, adminEmail).
		Return(&domain.Principal{UserID: "admin-1", Email: adminEmail, Role: domain.RoleAdmin}, nil)
}

func (suite *HandlersTestSuite) TestAdmin_RejectsNonAdmin() {
	suite.principals.On("ResolvePrincipal", mock.Anything, tellerEmail).
		Return(&domain.Principal{UserID: "teller-1", Email: tellerEmail, Role: domain.RoleTeller}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/accounts", tellerEmail, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.accounts.AssertNotCalled(suite.T(), "ListAllAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestAdmin_ResolverUnavailable() {
	suite.principals.On("ResolvePrincipal", mock.Anything, adminEmail).Return(nil, apperrors.ErrUnavailable).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/accounts", adminEmail, nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlersTestSuite) TestAdmin_ListAccounts() {
	suite.asAdmin()
	suite.accounts.On("ListAllAccounts", mock.Anything, 20, 0).
		Return([]domain.Account{{AccountID: "a-1", OwnerName: "Alice", IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/accounts", adminEmail, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AdminAccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Alice", resp[0].OwnerName)
	suite.True(resp[0].IsActive)
}

func (suite *HandlersTestSuite) TestAdmin_ProvisionAccount() {
	suite.asAdmin()
	customerID := "6f1c2b1e-8d7a-4a43-9d1e-2b0f7c3a9e11"
	suite.accounts.On("ProvisionAccount", mock.Anything, dto.CreateAccountRequest{CustomerID: customerID, AccountType: domain.Savings}, "admin-1").
		Return(&domain.Account{AccountID: "a-9", AccountNumber: "5555555555", AccountType: domain.Savings, IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/accounts", adminEmail, map[string]any{"customerID": customerID, "accountType": "SAVINGS"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.accounts.AssertExpectations(suite.T())

	w = suite.do(http.MethodPost, "/api/v1/admin/accounts", adminEmail, map[string]any{"customerID": customerID, "accountType": "BROKERAGE"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestAdmin_DeactivateAndActivate() {
	suite.asAdmin()
	suite.accounts.On("DeactivateAccount", mock.Anything, "a-1", "admin-1").Return(nil).Once()
	suite.accounts.On("ActivateAccount", mock.Anything, "a-1", "admin-1").Return(nil).Once()
	suite.accounts.On("DeactivateAccount", mock.Anything, "missing", "admin-1").Return(apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodPatch, "/api/v1/admin/accounts/a-1/deactivate", adminEmail, nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPatch, "/api/v1/admin/accounts/a-1/activate", adminEmail, nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPatch, "/api/v1/admin/accounts/missing/deactivate", adminEmail, nil).Code)
	suite.accounts.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestAdmin_HistoryAndDeposit() {
	suite.asAdmin()
	suite.ledger.On("GetAccountHistoryForAdmin", mock.Anything, "1000000001").Return([]domain.TransactionView{}, nil).Once()
	suite.ledger.On("Deposit", mock.Anything, mock.Anything, adminEmail).Return(&domain.TransactionView{}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/admin/accounts/1000000001/transactions", adminEmail, nil).Code)
	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/admin/deposit", adminEmail,
		map[string]any{"accountNumber": "1000000001", "amount": 5}).Code)
	suite.ledger.AssertExpectations(suite.T())
}

// --- Auth ---

func (suite *HandlersTestSuite) TestLogin() {
	suite.auth.On("Login", mock.Anything, dto.LoginRequest{Email: adminEmail, Password: "s3cret"}).
		Return(&dto.LoginResponse{Token: "tok", TokenType: "Bearer"}, nil).Once()
	suite.auth.On("Login", mock.Anything, dto.LoginRequest{Email: adminEmail, Password: "wrong"}).
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/auth/login", "", map[string]any{"email": adminEmail, "password": "s3cret"})
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tok", resp.Token)

	w = suite.do(http.MethodPost, "/auth/login", "", map[string]any{"email": adminEmail, "password": "wrong"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid email or password", suite.errorBody(w))

	w = suite.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "not-an-email", "password": "x"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}
