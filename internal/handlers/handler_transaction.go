package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/DKMApps/masjid_kas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for ledger transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes for transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, userService portssvc.UserSvcFacade) {
	h := newTransactionHandler(transactionService)

	txnGroup := rg.Group("/transactions")
	{
		txnGroup.POST("", middleware.RequirePermission(userService, domain.PageTransactions, domain.ActionCreate), h.createTransaction)
		txnGroup.GET("", middleware.RequirePermission(userService, domain.PageTransactions, domain.ActionView), h.listTransactions)
		txnGroup.GET("/:transaction_id", middleware.RequirePermission(userService, domain.PageTransactions, domain.ActionView), h.getTransaction)
		// The reset wipes the whole ledger, so the transactions-delete
		// capability is not enough: only admins may call it.
		txnGroup.POST("/reset", middleware.RequireRole(userService, domain.RoleAdmin), h.resetTransactions)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an income or expense entry. The type must match the category's type.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
			return
		}
		if errors.Is(err, apperrors.ErrNotConfigured) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Mosque has not been configured yet"})
			return
		}
		logger.Error("Failed to create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first with keyset pagination.
// @Tags transactions
// @Produce json
// @Param from query string false "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string false "End date (inclusive, YYYY-MM-DD)"
// @Param type query string false "Filter by type (INCOME or EXPENSE)"
// @Param categoryID query string false "Filter by category"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param pageToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transaction_id")

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// resetTransactions godoc
// @Summary Reset all transactions
// @Description Deletes every transaction and restarts bookkeeping from the given opening balance and date. Irreversible.
// @Tags transactions
// @Accept json
// @Produce json
// @Param reset body dto.ResetTransactionsRequest true "New opening position"
// @Success 200 {object} dto.ResetTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Mosque not configured yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/reset [post]
func (h *transactionHandler) resetTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ResetTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	deletedCount, err := h.transactionService.ResetTransactions(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotConfigured) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Mosque has not been configured yet"})
			return
		}
		logger.Error("Failed to reset transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reset transactions"})
		return
	}

	logger.Info("Transactions reset", slog.Int64("deleted_count", deletedCount), slog.String("actor_user_id", userID))
	c.JSON(http.StatusOK, dto.ResetTransactionsResponse{
		DeletedCount:   deletedCount,
		OpeningBalance: req.OpeningBalance,
		OpeningDate:    req.OpeningDate,
	})
}
