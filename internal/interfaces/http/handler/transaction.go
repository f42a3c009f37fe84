package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
	"github.com/dailyledger/backend/internal/domain/ledger"
)

// TransactionHandler handles the daily transaction ledger endpoints
type TransactionHandler struct {
	BaseHandler
	transactionService *ledgerapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *ledgerapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// RegisterRoutes registers transaction routes on the API group
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories/:category_id/transactions", h.List)
	rg.PUT("/categories/:category_id/transactions", h.Create)
	rg.POST("/categories/:category_id/transactions/:tx_id", h.Update)
}

// List returns the category's transactions for the requested date
// (default today), filtered by type and customer.
func (h *TransactionHandler) List(c *gin.Context) {
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filter := ledger.TransactionFilter{
		Type:     c.Query("type"),
		Customer: c.Query("customer"),
	}

	txs, err := h.transactionService.ListForDay(c.Request.Context(), categoryID, c.Query("date"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, txs)
}

// Create stores a new transaction with its detail lines
func (h *TransactionHandler) Create(c *gin.Context) {
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req ledgerapp.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	tx, err := h.transactionService.Create(c.Request.Context(), categoryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, tx)
}

// Update replaces the transaction's scalar fields and full detail set.
// The body id must match the path id.
func (h *TransactionHandler) Update(c *gin.Context) {
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	txID, err := pathID(c, "tx_id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req ledgerapp.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	tx, err := h.transactionService.Update(c.Request.Context(), categoryID, txID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, tx)
}
