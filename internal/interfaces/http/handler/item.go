package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
)

// ItemHandler handles the per-category item endpoints
type ItemHandler struct {
	BaseHandler
	itemService *ledgerapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *ledgerapp.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// RegisterRoutes registers item routes on the API group
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories/:category_id/items", h.List)
	rg.PUT("/categories/:category_id/items", h.Create)
}

// List returns the category's active items as { id, name } pairs
func (h *ItemHandler) List(c *gin.Context) {
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items, err := h.itemService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, items)
}

// Create adds one item to the category
func (h *ItemHandler) Create(c *gin.Context) {
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req ledgerapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), categoryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, item)
}

// pathID parses a numeric path parameter
func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
