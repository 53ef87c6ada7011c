package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Error sends an error response carrying the error's message
func (h *BaseHandler) Error(c *gin.Context, statusCode int, err error) {
	c.JSON(statusCode, dto.ErrorResponse{ErrorMsg: err.Error()})
}

// ErrorMsg sends an error response with a literal message
func (h *BaseHandler) ErrorMsg(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{ErrorMsg: message})
}
