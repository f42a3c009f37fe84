package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
)

// CategoryHandler handles the category listing and bulk insert endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *ledgerapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *ledgerapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers category routes on the API group
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.List)
	rg.POST("/categories", h.CreateBulk)
}

// List returns all active categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, categories)
}

// CreateBulk inserts the posted categories and echoes the full table
func (h *CategoryHandler) CreateBulk(c *gin.Context) {
	var reqs []ledgerapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		h.HandleError(c, err)
		return
	}

	categories, err := h.categoryService.CreateBulk(c.Request.Context(), reqs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, categories)
}
