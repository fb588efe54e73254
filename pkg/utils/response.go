package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
}

// NotFoundJSON sends a not found error response
func NotFoundJSON(ctx *gin.Context, resource string) {
	ctx.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// BadRequestJSON sends a bad request error response
func BadRequestJSON(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// ConflictJSON sends a conflict error response
func ConflictJSON(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// ForbiddenJSON sends a forbidden error response
func ForbiddenJSON(ctx *gin.Context) {
	ctx.JSON(http.StatusForbidden, ErrorResponse{Error: "Access forbidden"})
}

// InternalErrorJSON sends a generic internal server error response. The real
// error is for the server log, never the client.
func InternalErrorJSON(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
