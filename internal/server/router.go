package server

import (
	"net/http"

	"finance-history/internal/handlers"
	"finance-history/internal/middleware"
	"finance-history/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers the router mounts. Dev is nil outside development.
type Handlers struct {
	History    *handlers.HistoryHandler
	Preference *handlers.PreferenceHandler
	Selection  *handlers.SelectionHandler
	Health     *handlers.HealthCheckHandler
	Dev        *handlers.DevHandler
}

// Options configures cross-cutting middleware
type Options struct {
	CORSAllowOrigins []string
	RateLimiter      *middleware.RateLimiter
	MetricsHandler   http.Handler
}

// NewRouter builds the echo instance with the middleware chain and every route
func NewRouter(
	h Handlers,
	tokenService services.TokenServiceInterface,
	metrics services.MetricsRecorderInterface,
	opts Options,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(metrics))
	e.Use(middleware.PanicRecovery(metrics))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.ErrorMetrics(metrics))
	if len(opts.CORSAllowOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: opts.CORSAllowOrigins,
			AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		}))
	}

	e.GET("/health", h.Health.HealthCheck)

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	api := e.Group("/api/v1")
	if opts.RateLimiter != nil {
		api.Use(opts.RateLimiter.Middleware())
	}
	api.Use(middleware.RequireAuth(tokenService, metrics))

	history := api.Group("/history")
	history.GET("/transactions", h.History.GetTransactionHistory)
	history.GET("/categories/:parentCategoryId", h.History.GetCategoryHistory)
	history.GET("/date-ranges", h.History.ListDateRanges)

	preferences := api.Group("/preferences")
	preferences.GET("/date-range", h.Preference.GetDateRange)
	preferences.PUT("/date-range", h.Preference.UpdateDateRange)

	selections := api.Group("/selections")
	selections.POST("", h.Selection.Begin)
	selections.GET("/:sessionId", h.Selection.Get)
	selections.PUT("/:sessionId", h.Selection.Complete)
	selections.DELETE("/:sessionId", h.Selection.Clear)

	if h.Dev != nil {
		dev := api.Group("/dev")
		dev.POST("/history/seed", h.Dev.SeedHistory)
		dev.DELETE("/history", h.Dev.ClearHistory)
	}

	return e
}
