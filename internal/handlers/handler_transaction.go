package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: ts}

	txns := rg.Group("/transactions")
	txns.GET("", h.listTransactions)
	txns.POST("", h.createTransaction)
}

// listTransactions godoc
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} domain.Transaction
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction", "list transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// createTransaction godoc
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Transaction", "create transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}
