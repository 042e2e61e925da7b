package response

import (
	"errors"
	"net/http"
	"time"

	"marketplace-payments/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID on every response.
const HeaderRequestID = "X-Request-ID"

// ListResponse is the envelope for collection endpoints.
type ListResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
}

// ErrorResponse is the error envelope. Error is the human readable message;
// Raw is only set for processor failures and Details only for errors that
// carry reconciliation data.
type ErrorResponse struct {
	Error     string         `json:"error"`
	ErrorCode string         `json:"error_code"`
	Raw       interface{}    `json:"raw,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id"`
	Timestamp string         `json:"timestamp"`
}

// OK sends a 200 response whose body is data itself.
func OK(c *gin.Context, data interface{}) {
	c.Header(HeaderRequestID, getRequestID(c))
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response whose body is data itself.
func Created(c *gin.Context, data interface{}) {
	c.Header(HeaderRequestID, getRequestID(c))
	c.JSON(http.StatusCreated, data)
}

// Accepted sends a 202 response whose body is data itself.
func Accepted(c *gin.Context, data interface{}) {
	c.Header(HeaderRequestID, getRequestID(c))
	c.JSON(http.StatusAccepted, data)
}

// List sends a 200 response wrapping items in the list envelope.
func List(c *gin.Context, items interface{}) {
	id := getRequestID(c)
	c.Header(HeaderRequestID, id)
	c.JSON(http.StatusOK, ListResponse{Data: items, RequestID: id})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	id := getRequestID(c)
	c.Header(HeaderRequestID, id)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		resp := ErrorResponse{
			Error:     appErr.Message,
			ErrorCode: appErr.Code,
			RequestID: id,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		for k, v := range appErr.Details {
			if k == "raw" {
				resp.Raw = v
				continue
			}
			if resp.Details == nil {
				resp.Details = make(map[string]any, len(appErr.Details))
			}
			resp.Details[k] = v
		}
		c.JSON(appErr.HTTPStatus, resp)
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "Internal server error",
		ErrorCode: "SYS_000",
		RequestID: id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	id := uuid.New().String()
	c.Set("request_id", id)
	return id
}
