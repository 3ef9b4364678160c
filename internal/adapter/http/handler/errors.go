package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/sentiment-api/internal/usecase"
)

// Error codes carried in ErrorInfo.Code
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeInternalError  = "INTERNAL_ERROR"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It provides consistent error handling across all handlers.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidRequest,
			Message:    "invalid request",
		}
	default:
		return InternalError()
	}
}

// InternalError is the response for any failure the client cannot act on.
// Details stay in the logs.
func InternalError() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "internal server error",
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	MapUsecaseError(err).Abort(c)
}

// HandleInvalidRequest handles a request body that failed to bind.
func HandleInvalidRequest(c *gin.Context, message string) {
	ErrorResponse{StatusCode: http.StatusBadRequest, Code: CodeInvalidRequest, Message: message}.Abort(c)
}

// NotFound answers requests that match no route
func NotFound(c *gin.Context) {
	ErrorResponse{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: "resource not found"}.Abort(c)
}
