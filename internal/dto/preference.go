package dto

import (
	"time"

	"finance-history/internal/models"
)

// UpdateDateRangePreferenceRequest is the body of PUT /preferences/date-range
type UpdateDateRangePreferenceRequest struct {
	Range     string     `json:"range" validate:"required,date_range_token"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// DateRangePreferenceResponse is the stored (or default) range
type DateRangePreferenceResponse struct {
	Range     models.DateRangeToken `json:"range"`
	Label     string                `json:"label"`
	StartDate *time.Time            `json:"startDate,omitempty"`
	EndDate   *time.Time            `json:"endDate,omitempty"`
}

// NewDateRangePreferenceResponse converts a stored preference
func NewDateRangePreferenceResponse(pref *models.DateRangePreference) DateRangePreferenceResponse {
	return DateRangePreferenceResponse{
		Range:     pref.Token,
		Label:     pref.Token.Label(),
		StartDate: pref.CustomStart,
		EndDate:   pref.CustomEnd,
	}
}
