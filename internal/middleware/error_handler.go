package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"finance-history/internal/errors"
	"finance-history/internal/handlers"
	"finance-history/internal/services"
	"finance-history/internal/validation"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler formats errors that escape handlers (routing misses, binder failures,
// panics converted by echo) as standardized error responses and counts them as api.error.
// Responses written by handlers.SendError are counted by ErrorMetrics instead.
func NewHTTPErrorHandler(metrics services.MetricsRecorderInterface) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		if echoErr, ok := err.(*echo.HTTPError); ok {
			errorResponse = errors.NewErrorResponse(
				mapHTTPStatusToErrorCode(echoErr.Code),
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		} else if fields, ok := validation.FieldErrors(err); ok {
			errorResponse = errors.NewValidationError(fields, traceID)
			httpStatus = http.StatusBadRequest
		} else {
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		recordAPIError(metrics, c, errorResponse.Error.Code, httpStatus)

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

// ErrorMetrics counts error responses written directly by handlers. The error code is read
// back from the response header set by handlers.SendError.
func ErrorMetrics(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				return err
			}

			status := c.Response().Status
			if status >= http.StatusBadRequest {
				if code := c.Response().Header().Get(handlers.ErrorCodeHeader); code != "" {
					recordAPIError(metrics, c, code, status)
				}
			}
			return nil
		}
	}
}

func recordAPIError(metrics services.MetricsRecorderInterface, c echo.Context, code string, status int) {
	metrics.IncrementCounter("api.error", map[string]string{
		"code":     code,
		"endpoint": c.Path(),
		"status":   fmt.Sprintf("%d", status),
	})
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.SystemNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
