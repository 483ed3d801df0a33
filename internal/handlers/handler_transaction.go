package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for deposits, transfers and history.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvc
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvc) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers the ledger routes. mutationLimit guards
// the balance-changing endpoints.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc, mutationLimit gin.HandlerFunc) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/deposit", mutationLimit, h.deposit)
		transactions.POST("/transfer", mutationLimit, h.transfer)
		transactions.GET("/history/:accountNumber", h.history)
	}
}

// deposit godoc
// @Summary Deposit into an account
// @Description Credits an account. Only TELLER and ADMIN users may deposit.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   deposit body dto.DepositRequest true "Deposit details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, inactive account or malformed request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Self-deposits are not allowed"
// @Failure 404 {object} ErrorResponse "Account or performer not found"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to process deposit"
// @Failure 503 {object} ErrorResponse "Service temporarily unavailable"
// @Security BearerAuth
// @Router /transactions/deposit [post]
func (h *transactionHandler) deposit(c *gin.Context) {
	depositFor(c, h.ledgerService)
}

// depositFor is shared by the teller and admin deposit routes.
func depositFor(c *gin.Context, ledgerService portssvc.LedgerSvc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("account_number", req.AccountNumber))
	view, err := ledgerService.Deposit(c.Request.Context(), req, identity)
	if err != nil {
		respondError(c, logger, err, "Failed to process deposit")
		return
	}

	logger.Info("Deposit processed", slog.String("transaction_id", view.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*view))
}

// transfer godoc
// @Summary Transfer between accounts
// @Description Moves money from a source account to a different destination account.
// @Description The response lists the source (TRANSFER_OUT) record first.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, same account, inactive account or insufficient funds"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account or performer not found"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to process transfer"
// @Failure 503 {object} ErrorResponse "Service temporarily unavailable"
// @Security BearerAuth
// @Router /transactions/transfer [post]
func (h *transactionHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("source_account", req.SourceAccountNumber),
		slog.String("destination_account", req.DestinationAccountNumber))
	views, err := h.ledgerService.Transfer(c.Request.Context(), req, identity)
	if err != nil {
		respondError(c, logger, err, "Failed to process transfer")
		return
	}

	logger.Info("Transfer processed")
	c.JSON(http.StatusCreated, dto.ToListTransactionResponse(views))
}

// history godoc
// @Summary Get account history
// @Description Lists the records of an account owned by the caller, newest first.
// @Description Without paging parameters the whole history is returned as an array;
// @Description with limit or nextToken one page is returned as a dto.ListTransactionsResponse.
// @Tags transactions
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   limit query int false "Page size (max 100)"
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid nextToken"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the account owner"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve history"
// @Security BearerAuth
// @Router /transactions/history/{accountNumber} [get]
func (h *transactionHandler) history(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for history", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("account_number", accountNumber))
	_, hasLimit := c.GetQuery("limit")
	if !hasLimit && params.NextToken == nil {
		views, err := h.ledgerService.GetAccountHistory(c.Request.Context(), accountNumber, identity)
		if err != nil {
			respondError(c, logger, err, "Failed to retrieve history")
			return
		}
		c.JSON(http.StatusOK, dto.ToListTransactionResponse(views))
		return
	}

	views, next, err := h.ledgerService.ListAccountHistoryPage(c.Request.Context(), accountNumber, identity, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve history")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(views),
		NextToken:    next,
	})
}
