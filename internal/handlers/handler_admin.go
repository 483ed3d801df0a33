package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles the administrative account and ledger routes.
// Every route runs behind RequireRole(ADMIN).
type adminHandler struct {
	accountService portssvc.AccountSvc
	ledgerService  portssvc.LedgerSvc
}

func newAdminHandler(as portssvc.AccountSvc, ls portssvc.LedgerSvc) *adminHandler {
	return &adminHandler{accountService: as, ledgerService: ls}
}

// registerAdminRoutes registers the /admin group. requireAdmin must reject non-ADMIN callers.
func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, requireAdmin gin.HandlerFunc, mutationLimit gin.HandlerFunc) {
	h := newAdminHandler(services.Account, services.Ledger)

	admin := rg.Group("/admin", requireAdmin)
	{
		admin.GET("/accounts", h.listAccounts)
		admin.POST("/accounts", h.provisionAccount)
		admin.PATCH("/accounts/:accountID/deactivate", h.deactivateAccount)
		admin.PATCH("/accounts/:accountID/activate", h.activateAccount)
		admin.GET("/accounts/:accountID/transactions", h.accountHistory)
		admin.POST("/deposit", mutationLimit, h.deposit)
	}
}

// performerID returns the user id of the principal stored by RequireRole.
func performerID(c *gin.Context) (string, bool) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		return "", false
	}
	return principal.UserID, true
}

// listAccounts godoc
// @Summary List all accounts
// @Description Lists every account with owner data and status, newest first
// @Tags admin
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.AdminAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /admin/accounts [get]
func (h *adminHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAllAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAdminAccountResponse(accounts))
}

// provisionAccount godoc
// @Summary Open an account
// @Description Opens a zero-balance, active account for an existing customer
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AdminAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 409 {object} ErrorResponse "No free account number"
// @Failure 500 {object} ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /admin/accounts [post]
func (h *adminHandler) provisionAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProvisionAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, ok := performerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.accountService.ProvisionAccount(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdminAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Blocks every deposit and transfer touching the account. Idempotent.
// @Tags admin
// @Param   accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to deactivate account"
// @Security BearerAuth
// @Router /admin/accounts/{accountID}/deactivate [patch]
func (h *adminHandler) deactivateAccount(c *gin.Context) {
	h.setActive(c, false)
}

// activateAccount godoc
// @Summary Activate an account
// @Description Lifts a deactivation. Idempotent.
// @Tags admin
// @Param   accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to activate account"
// @Security BearerAuth
// @Router /admin/accounts/{accountID}/activate [patch]
func (h *adminHandler) activateAccount(c *gin.Context) {
	h.setActive(c, true)
}

func (h *adminHandler) setActive(c *gin.Context, active bool) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))

	adminID, ok := performerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var err error
	fallback := "Failed to deactivate account"
	if active {
		fallback = "Failed to activate account"
		err = h.accountService.ActivateAccount(c.Request.Context(), accountID, adminID)
	} else {
		err = h.accountService.DeactivateAccount(c.Request.Context(), accountID, adminID)
	}
	if err != nil {
		respondError(c, logger, err, fallback)
		return
	}
	c.Status(http.StatusNoContent)
}

// accountHistory godoc
// @Summary Get any account's history
// @Description Lists every record of an account, newest first, without the ownership check
// @Tags admin
// @Produce  json
// @Param   accountID path string true "Account number"
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve history"
// @Security BearerAuth
// @Router /admin/accounts/{accountID}/transactions [get]
func (h *adminHandler) accountHistory(c *gin.Context) {
	accountNumber := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_number", accountNumber))

	views, err := h.ledgerService.GetAccountHistoryForAdmin(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(views))
}

// deposit godoc
// @Summary Deposit as administrator
// @Description Credits any active account on behalf of the calling administrator
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   deposit body dto.DepositRequest true "Deposit details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, inactive account or malformed request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to process deposit"
// @Security BearerAuth
// @Router /admin/deposit [post]
func (h *adminHandler) deposit(c *gin.Context) {
	depositFor(c, h.ledgerService)
}
