package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"finance-history/internal/dto"
	"finance-history/internal/errors"
	"finance-history/internal/models"
	"finance-history/internal/repositories"
	"finance-history/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedCount = 200
	maxSeedCount     = 5000
	defaultSeedDays  = 90
	maxSeedDays      = 730
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
	now             func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator services.TransactionGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       generator,
		now:             time.Now,
	}
}

// SeedHistory generates a realistic income and expense history for the caller
//
// Method: POST /api/v1/dev/history/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of expense and income entries (default: 200, max: 5000)
//   - days: Days of history ending now (default: 90, max: 730)
//
// A salary entry is added on the first of every month in the window.
//
// Success Response: 201 Created
//   - transactionsCreated, startDate, endDate
//
// Error Responses:
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) SeedHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntParam(c, "count", defaultSeedCount, 1, maxSeedCount)
	days := getIntParam(c, "days", defaultSeedDays, 1, maxSeedDays)

	endDate := h.now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	generated := h.generator.GenerateHistory(userID, startDate, endDate, count)
	generated = append(generated, h.generator.GenerateMonthlyIncome(userID, startDate, endDate)...)

	batch := make([]models.Transaction, 0, len(generated))
	for _, txn := range generated {
		batch = append(batch, *txn)
	}

	if err := h.transactionRepo.CreateBatch(batch); err != nil {
		return SendSystemError(c, err)
	}

	slog.Info("seeded transaction history",
		"user_id", userID,
		"transactions", len(batch),
		"days", days)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.SeedHistoryResponse{
			TransactionsCreated: len(batch),
			StartDate:           startDate,
			EndDate:             endDate,
		},
		Message: "test data generated successfully",
	})
}

// ClearHistory removes every stored transaction of the caller
//
// Method: DELETE /api/v1/dev/history
// Authentication: Required
// Environment: Development only
//
// Success Response: 200 OK
//   - transactionsDeleted: Number of transactions deleted
func (h *DevHandler) ClearHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	deleted, err := h.transactionRepo.DeleteByUser(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ClearHistoryResponse{TransactionsDeleted: deleted}, nil)
}
