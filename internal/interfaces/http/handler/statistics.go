package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
)

// StatisticsHandler handles the stock snapshot endpoint
type StatisticsHandler struct {
	BaseHandler
	stockService *ledgerapp.StockService
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(stockService *ledgerapp.StockService) *StatisticsHandler {
	return &StatisticsHandler{stockService: stockService}
}

// RegisterRoutes registers statistics routes on the API group
func (h *StatisticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/statistics/stock", h.Stock)
}

// Stock returns the per-item signed net stock of a category as of the
// latest transaction date before the given cutoff (default today). The
// missing category parameter is the one client error this API reports
// as a 400.
func (h *StatisticsHandler) Stock(c *gin.Context) {
	categoryParam := c.Query("category")
	if categoryParam == "" {
		h.BadRequest(c, "category_id is required")
		return
	}
	categoryID, err := strconv.ParseInt(categoryParam, 10, 64)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	snapshot, err := h.stockService.Snapshot(c.Request.Context(), categoryID, c.Query("date"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, snapshot)
}
