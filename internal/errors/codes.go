package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// History error codes (HISTORY_*)
const (
	HistoryInvalidDateRange    ErrorCode = "HISTORY_001"
	HistoryFetchFailed         ErrorCode = "HISTORY_002"
	HistoryInvalidAmountFilter ErrorCode = "HISTORY_003"
	HistoryInvalidCategoryID   ErrorCode = "HISTORY_004"
	HistoryBackendUnavailable  ErrorCode = "HISTORY_005"
)

// Preference error codes (PREFERENCE_*)
const (
	PreferenceInvalid ErrorCode = "PREFERENCE_001"
)

// Selection error codes (SELECTION_*)
const (
	SelectionNotFound    ErrorCode = "SELECTION_001"
	SelectionForbidden   ErrorCode = "SELECTION_002"
	SelectionInvalidKind ErrorCode = "SELECTION_003"
	SelectionEmptyValue  ErrorCode = "SELECTION_004"
	SelectionInvalidID   ErrorCode = "SELECTION_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemNotFound           ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	HistoryInvalidDateRange:    "Invalid date range",
	HistoryFetchFailed:         "Could not load transactions. Please try again",
	HistoryInvalidAmountFilter: "Invalid amount filter",
	HistoryInvalidCategoryID:   "Invalid category ID format",
	HistoryBackendUnavailable:  "Transaction history is temporarily unavailable",

	PreferenceInvalid: "Invalid date range preference",

	SelectionNotFound:    "Selection session not found or expired",
	SelectionForbidden:   "Selection session belongs to another user",
	SelectionInvalidKind: "Invalid selection kind",
	SelectionEmptyValue:  "A selected value is required",
	SelectionInvalidID:   "Invalid selection session ID format",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemNotFound:           "Resource not found",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
