package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"finance-history/internal/dto"
	"finance-history/internal/errors"
	"finance-history/internal/models"
	"finance-history/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HistoryHandler serves the transaction and category history views
type HistoryHandler struct {
	pipeline    services.FilterPipelineInterface
	preferences services.PreferenceServiceInterface
	resolver    services.DateRangeResolverInterface
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(
	pipeline services.FilterPipelineInterface,
	preferences services.PreferenceServiceInterface,
	resolver services.DateRangeResolverInterface,
) *HistoryHandler {
	return &HistoryHandler{
		pipeline:    pipeline,
		preferences: preferences,
		resolver:    resolver,
	}
}

// GetTransactionHistory returns the filtered history grouped by parent category
// @Summary Transaction history
// @Description Fetch the user's transactions for a date range, apply the filters and group them by parent category
// @Tags History
// @Security BearerAuth
// @Produce json
// @Param range query string false "Date range token; the last used range when omitted" Enums(today, yesterday, this_week, last_week, this_month, last_month, this_year, last_year, custom)
// @Param startDate query string false "Custom range start (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "Custom range end (YYYY-MM-DD or RFC3339)"
// @Param amountFilter query string false "Amount rule" Enums(all, over, under, between, exact)
// @Param min query string false "Lower bound for over and between"
// @Param max query string false "Upper bound for under and between"
// @Param exact query string false "Value for exact"
// @Param wallet query string false "Wallet name"
// @Param type query string false "Transaction direction" Enums(all, income, expense)
// @Param note query string false "Case-insensitive note substring"
// @Success 200 {object} SuccessResponse{data=models.AggregatedResult,meta=dto.HistoryMeta}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, HISTORY_001 or HISTORY_003"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 502 {object} errors.ErrorResponse "HISTORY_002 - Transactions could not be fetched"
// @Failure 503 {object} errors.ErrorResponse "HISTORY_005 - Transaction backend unavailable"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /history/transactions [get]
func (h *HistoryHandler) GetTransactionHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.HistoryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	spec, err := query.TransactionSpec()
	if err != nil {
		return SendError(c, errors.HistoryInvalidAmountFilter, errors.WithDetails(err.Error()))
	}

	return h.run(c, userID, query, spec)
}

// GetCategoryHistory returns the history of one parent category
// @Summary Category history
// @Description Same as the transaction view, scoped to one parent category and everything under it
// @Tags History
// @Security BearerAuth
// @Produce json
// @Param parentCategoryId path string true "Parent category ID (UUID)"
// @Param range query string false "Date range token; the last used range when omitted"
// @Param startDate query string false "Custom range start"
// @Param endDate query string false "Custom range end"
// @Param amountFilter query string false "Amount rule" Enums(all, over, under, between, exact)
// @Param min query string false "Lower bound"
// @Param max query string false "Upper bound"
// @Param exact query string false "Exact value"
// @Param wallet query string false "Wallet name"
// @Param note query string false "Note substring"
// @Success 200 {object} SuccessResponse{data=models.AggregatedResult,meta=dto.HistoryMeta}
// @Failure 400 {object} errors.ErrorResponse "HISTORY_004 - Invalid category ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 502 {object} errors.ErrorResponse "HISTORY_002 - Transactions could not be fetched"
// @Failure 503 {object} errors.ErrorResponse "HISTORY_005 - Transaction backend unavailable"
// @Router /history/categories/{parentCategoryId} [get]
func (h *HistoryHandler) GetCategoryHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	parentID, err := uuid.Parse(c.Param("parentCategoryId"))
	if err != nil || parentID == uuid.Nil {
		return SendError(c, errors.HistoryInvalidCategoryID)
	}

	var query dto.HistoryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	spec, err := query.CategorySpec(parentID)
	if err != nil {
		return SendError(c, errors.HistoryInvalidAmountFilter, errors.WithDetails(err.Error()))
	}

	return h.run(c, userID, query, spec)
}

// ListDateRanges returns the picker options with their bounds resolved against now
// @Summary Date range options
// @Tags History
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.DateRangeOption}
// @Router /history/date-ranges [get]
func (h *HistoryHandler) ListDateRanges(c echo.Context) error {
	tokens := models.AllDateRangeTokens()
	options := make([]dto.DateRangeOption, 0, len(tokens))

	for _, token := range tokens {
		option := dto.DateRangeOption{Token: token, Label: token.Label()}
		if token != models.DateRangeCustom {
			resolved, err := h.resolver.Resolve(token, nil, nil)
			if err != nil {
				return SendSystemError(c, err)
			}
			option.StartDate = &resolved.Start
			option.EndDate = &resolved.End
		}
		options = append(options, option)
	}

	return SendSuccess(c, http.StatusOK, options, nil)
}

func (h *HistoryHandler) run(c echo.Context, userID uuid.UUID, query dto.HistoryQuery, spec models.FilterSpec) error {
	ctx := c.Request().Context()

	req := services.PipelineRequest{UserID: userID, Spec: spec}
	explicit := query.HasRange()

	if explicit {
		token, err := query.DateRangeToken()
		if err != nil {
			return SendError(c, errors.HistoryInvalidDateRange, errors.WithDetails(err.Error()))
		}
		start, end, err := query.CustomBounds()
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		req.Token = token
		req.CustomStart = start
		req.CustomEnd = end
	} else {
		pref, err := h.preferences.GetLastDateRange(ctx, userID)
		if err != nil {
			return SendSystemError(c, err)
		}
		req.Token = pref.Token
		req.CustomStart = pref.CustomStart
		req.CustomEnd = pref.CustomEnd
	}

	result, err := h.pipeline.Run(ctx, req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidArgument) {
			return SendError(c, errors.HistoryInvalidDateRange, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	if result.Failed() {
		if stderrors.Is(result.FetchErr, services.ErrCircuitBreakerOpen) {
			return SendError(c, errors.HistoryBackendUnavailable)
		}
		return SendError(c, errors.HistoryFetchFailed)
	}

	if explicit {
		h.rememberRange(c, userID, req)
	}

	return SendSuccess(c, http.StatusOK, result.Result, dto.HistoryMeta{
		Range:          result.Token,
		RangeLabel:     result.Token.Label(),
		FetchedCount:   result.FetchedCount,
		MalformedCount: result.MalformedCount,
	})
}

// rememberRange stores an explicitly picked range. Failing to store it never fails the request.
func (h *HistoryHandler) rememberRange(c echo.Context, userID uuid.UUID, req services.PipelineRequest) {
	pref := models.DateRangePreference{
		Token:       req.Token,
		CustomStart: req.CustomStart,
		CustomEnd:   req.CustomEnd,
	}
	if err := h.preferences.SetLastDateRange(c.Request().Context(), userID, pref); err != nil {
		slog.Warn("failed to remember date range",
			"trace_id", getTraceID(c),
			"user_id", userID,
			"token", req.Token,
			"error", err)
	}
}
