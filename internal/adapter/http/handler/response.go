package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id. The
// RequestID middleware sets it and every envelope echoes it in Meta.
const RequestIDKey = "request_id"

// Response is the envelope used by the operator endpoints and by every
// error. POST /predict answers with a bare PredictOutput on success.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *MetaInfo   `json:"meta"`
}

// ErrorInfo is the error half of the envelope
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MetaInfo identifies the request an envelope answers
type MetaInfo struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// envelope stamps data or errInfo with the request's metadata. A request
// that skipped the RequestID middleware still gets a fresh id.
func envelope(c *gin.Context, data interface{}, errInfo *ErrorInfo) Response {
	requestID := c.GetString(RequestIDKey)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return Response{
		Success: errInfo == nil,
		Data:    data,
		Error:   errInfo,
		Meta: &MetaInfo{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			RequestID: requestID,
		},
	}
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, envelope(c, data, nil))
}

// Abort writes e as an error envelope and stops the handler chain
func (e ErrorResponse) Abort(c *gin.Context) {
	c.AbortWithStatusJSON(e.StatusCode, envelope(c, nil, &ErrorInfo{
		Code:    e.Code,
		Message: e.Message,
	}))
}
