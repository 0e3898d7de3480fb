package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-history/internal/dto"
	"finance-history/internal/errors"
	"finance-history/internal/models"
	"finance-history/internal/services"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler exposes the remembered date range
type PreferenceHandler struct {
	preferences services.PreferenceServiceInterface
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferences services.PreferenceServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// GetDateRange returns the last picked date range, or the default one
// @Summary Get date range preference
// @Tags Preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.DateRangePreferenceResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /preferences/date-range [get]
func (h *PreferenceHandler) GetDateRange(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	pref, err := h.preferences.GetLastDateRange(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewDateRangePreferenceResponse(pref), nil)
}

// UpdateDateRange stores a date range
// @Summary Update date range preference
// @Tags Preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDateRangePreferenceRequest true "Range to remember"
// @Success 200 {object} SuccessResponse{data=dto.DateRangePreferenceResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or PREFERENCE_001"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /preferences/date-range [put]
func (h *PreferenceHandler) UpdateDateRange(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateDateRangePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	token, err := models.ParseDateRangeToken(req.Range)
	if err != nil {
		return SendError(c, errors.PreferenceInvalid, errors.WithDetails(err.Error()))
	}

	pref := models.DateRangePreference{
		Token:       token,
		CustomStart: req.StartDate,
		CustomEnd:   req.EndDate,
	}
	if err := h.preferences.SetLastDateRange(c.Request().Context(), userID, pref); err != nil {
		if stderrors.Is(err, services.ErrInvalidPreference) {
			return SendError(c, errors.PreferenceInvalid, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	if token != models.DateRangeCustom {
		pref.CustomStart = nil
		pref.CustomEnd = nil
	}

	return SendSuccess(c, http.StatusOK, dto.NewDateRangePreferenceResponse(&pref), nil)
}
