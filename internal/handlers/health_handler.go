package handlers

import (
	"net/http"
	"time"

	"finance-history/internal/errors"
	"finance-history/internal/services"

	"github.com/labstack/echo/v4"
)

// DatabasePinger is satisfied by *database.DB
type DatabasePinger interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      DatabasePinger
	breaker services.CircuitBreakerInterface
	now     func() time.Time
}

// NewHealthCheckHandler creates a new health check handler. breaker is nil when history is
// served from the local database.
func NewHealthCheckHandler(db DatabasePinger, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker, now: time.Now}
}

// HealthCheck reports database connectivity and the backend breaker state
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,backend=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	body := map[string]string{
		"status": "healthy",
		"time":   h.now().UTC().Format(time.RFC3339),
	}

	// An open breaker degrades history but the API itself stays up.
	if h.breaker != nil {
		body["backend"] = h.breaker.GetState().String()
		if h.breaker.IsOpen() {
			body["status"] = "degraded"
		}
	}

	return c.JSON(http.StatusOK, body)
}
