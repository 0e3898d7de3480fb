package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finance-history/internal/errors"
	"finance-history/internal/handlers"
	"finance-history/internal/services"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panic into a SYSTEM_001 response. The panic value and stack are logged,
// never returned to the caller.
func PanicRecovery(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				slog.Error("Panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				recordAPIError(metrics, c, string(errors.SystemInternalError), http.StatusInternalServerError)

				if c.Response().Committed {
					err = nil
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
