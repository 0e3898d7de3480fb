package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"finance-history/internal/dto"
	"finance-history/internal/errors"
	"finance-history/internal/models"
	"finance-history/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SelectionHandler manages picker sessions that hand a chosen category, wallet or icon back
// to the screen that opened the picker
type SelectionHandler struct {
	selections services.SelectionServiceInterface
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(selections services.SelectionServiceInterface) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// Begin opens a picker session
// @Summary Begin selection
// @Tags Selections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BeginSelectionRequest true "Picker kind"
// @Success 201 {object} SuccessResponse{data=models.SelectionSession}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or SELECTION_003"
// @Router /selections [post]
func (h *SelectionHandler) Begin(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.BeginSelectionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	session, err := h.selections.Begin(userID, models.SelectionKind(strings.ToLower(req.Kind)))
	if err != nil {
		return sendSelectionError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, session, nil)
}

// Get returns a session and its picked value, if any
// @Summary Get selection
// @Tags Selections
// @Security BearerAuth
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Success 200 {object} SuccessResponse{data=models.SelectionSession}
// @Failure 403 {object} errors.ErrorResponse "SELECTION_002 - Session belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "SELECTION_001 - Session not found or expired"
// @Router /selections/{sessionId} [get]
func (h *SelectionHandler) Get(c echo.Context) error {
	userID, sessionID, ok, err := h.sessionParams(c)
	if !ok {
		return err
	}

	session, err := h.selections.Get(userID, sessionID)
	if err != nil {
		return sendSelectionError(c, err)
	}

	return SendSuccess(c, http.StatusOK, session, nil)
}

// Complete records the picked value
// @Summary Complete selection
// @Tags Selections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID (UUID)"
// @Param request body dto.CompleteSelectionRequest true "Picked value"
// @Success 200 {object} SuccessResponse{data=models.SelectionSession}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or SELECTION_004"
// @Failure 404 {object} errors.ErrorResponse "SELECTION_001 - Session not found or expired"
// @Router /selections/{sessionId} [put]
func (h *SelectionHandler) Complete(c echo.Context) error {
	userID, sessionID, ok, err := h.sessionParams(c)
	if !ok {
		return err
	}

	var req dto.CompleteSelectionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	session, err := h.selections.Complete(userID, sessionID, req.SelectedID, req.SelectedLabel)
	if err != nil {
		return sendSelectionError(c, err)
	}

	return SendSuccess(c, http.StatusOK, session, nil)
}

// Clear drops a session once its value has been consumed
// @Summary Clear selection
// @Tags Selections
// @Security BearerAuth
// @Param sessionId path string true "Session ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "SELECTION_001 - Session not found or expired"
// @Router /selections/{sessionId} [delete]
func (h *SelectionHandler) Clear(c echo.Context) error {
	userID, sessionID, ok, err := h.sessionParams(c)
	if !ok {
		return err
	}

	if err := h.selections.Clear(userID, sessionID); err != nil {
		return sendSelectionError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// sessionParams reads the caller and the session id. When ok is false the error response has
// already been written and err is what the handler should return.
func (h *SelectionHandler) sessionParams(c echo.Context) (uuid.UUID, uuid.UUID, bool, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, false, SendError(c, errors.AuthMissingToken)
	}

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false, SendError(c, errors.SelectionInvalidID)
	}

	return userID, sessionID, true, nil
}

func sendSelectionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrSelectionNotFound):
		return SendError(c, errors.SelectionNotFound)
	case stderrors.Is(err, services.ErrSelectionForbidden):
		return SendError(c, errors.SelectionForbidden)
	case stderrors.Is(err, services.ErrInvalidSelectionKind):
		return SendError(c, errors.SelectionInvalidKind, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrEmptySelection):
		return SendError(c, errors.SelectionEmptyValue)
	default:
		return SendSystemError(c, err)
	}
}
