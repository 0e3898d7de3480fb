package handlers

import (
	"finance-history/internal/errors"
	"finance-history/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates an echo validator with the custom history rules registered
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// sendValidationError reports validator failures field by field
func sendValidationError(c echo.Context, err error) error {
	fields, ok := validation.FieldErrors(err)
	if !ok {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	c.Response().Header().Set(ErrorCodeHeader, string(errors.ValidationGeneral))
	return c.JSON(errors.GetHTTPStatus(errors.ValidationGeneral), errors.NewValidationError(fields, getTraceID(c)))
}
