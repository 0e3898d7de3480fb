package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"finance-history/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxMoneyDecimals is the precision amounts are stored with
const maxMoneyDecimals = 2

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("date_range_token", validateDateRangeToken)
	_ = v.RegisterValidation("amount_filter", validateAmountFilter)
	_ = v.RegisterValidation("transaction_scope", validateTransactionScope)
	_ = v.RegisterValidation("selection_kind", validateSelectionKind)
	_ = v.RegisterValidation("money", validateMoney)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateDateRangeToken accepts both tokens ("last_week") and labels ("Last Week")
func validateDateRangeToken(fl validator.FieldLevel) bool {
	_, err := models.ParseDateRangeToken(fl.Field().String())
	return err == nil
}

func validateAmountFilter(fl validator.FieldLevel) bool {
	return models.IsValidAmountFilterType(strings.ToLower(fl.Field().String()))
}

// validateTransactionScope allows "all" on top of the transaction types
func validateTransactionScope(fl validator.FieldLevel) bool {
	scope := strings.ToLower(fl.Field().String())
	return scope == "all" || models.IsValidTransactionType(scope)
}

func validateSelectionKind(fl validator.FieldLevel) bool {
	return models.SelectionKind(strings.ToLower(fl.Field().String())).IsValid()
}

// validateMoney checks for a non-negative decimal string with at most two decimal places
func validateMoney(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	if value.IsNegative() {
		return false
	}
	return value.Equal(value.Truncate(maxMoneyDecimals))
}

// FieldErrors flattens validator errors into field name to message. ok is false when err
// did not come from the validator.
func FieldErrors(err error) (map[string]string, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = FormatFieldError(fe)
	}
	return fields, true
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "date_range_token":
		return "must be one of: today, yesterday, this_week, last_week, this_month, last_month, this_year, last_year, custom"
	case "amount_filter":
		return "must be one of: all, over, under, between, exact"
	case "transaction_scope":
		return "must be one of: all, income, expense"
	case "selection_kind":
		return "must be one of: category, wallet, icon"
	case "money":
		return "must be a non-negative amount with at most 2 decimal places"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
