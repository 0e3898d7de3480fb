package handlers

import (
	"log/slog"
	"net/http"

	"finance-history/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers respond through these helpers only:
//
// 1. SendError - client errors and expected upstream failures (4xx, 502, 503)
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Bad filters: SendError(c, errors.HistoryInvalidAmountFilter)
//    - Ownership: SendError(c, errors.SelectionForbidden)
//    - Backend failures: SendError(c, errors.HistoryFetchFailed)
//
// 2. SendSystemError - internal errors (500). The cause is logged, never returned.
//
// DO NOT USE:
//    - echo.NewHTTPError() in handlers
//    - Direct c.JSON() for errors

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// ErrorCodeHeader carries the error code of an error response for metrics middleware
	ErrorCodeHeader = "X-Error-Code"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	c.Response().Header().Set(ErrorCodeHeader, errorResponse.Error.Code)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)

	slog.Error("request failed with internal error",
		"trace_id", traceID,
		"path", c.Path(),
		"error", cause)

	c.Response().Header().Set(ErrorCodeHeader, errorResponse.Error.Code)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendSuccess wraps data and optional meta in a SuccessResponse
func SendSuccess(c echo.Context, status int, data interface{}, meta interface{}) error {
	return c.JSON(status, SuccessResponse{Data: data, Meta: meta})
}
