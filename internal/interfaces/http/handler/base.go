package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dailyledger/backend/internal/domain/shared"
	"github.com/dailyledger/backend/internal/infrastructure/logger"
	"github.com/dailyledger/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends the payload as-is with HTTP 200. The clients consume raw
// rows, not an envelope.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends a 400 with the wire error shape
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// HandleError collapses every failure into a 500 carrying the serialized
// error, the way the clients expect. Domain errors keep their message;
// anything else is passed through verbatim.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	message := err.Error()
	if domainErr, ok := shared.AsDomainError(err); ok {
		message = domainErr.Message
	}
	logger.GetGinLogger(c).Error("Request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message))
}
