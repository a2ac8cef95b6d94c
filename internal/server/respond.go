package server

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse provides a consistent error response format.
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Status int    `json:"status"`
}

// respondError sends a standardized error response.
func respondError(c *gin.Context, statusCode int, message string, code string) {
	c.JSON(statusCode, ErrorResponse{
		Error:  message,
		Code:   code,
		Status: statusCode,
	})
}
