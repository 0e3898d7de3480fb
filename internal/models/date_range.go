package models

import (
	"errors"
	"strings"
	"time"
)

// DateRangeToken names a preset history window
type DateRangeToken string

const (
	DateRangeToday     DateRangeToken = "today"
	DateRangeYesterday DateRangeToken = "yesterday"
	DateRangeThisWeek  DateRangeToken = "this_week"
	DateRangeLastWeek  DateRangeToken = "last_week"
	DateRangeThisMonth DateRangeToken = "this_month"
	DateRangeLastMonth DateRangeToken = "last_month"
	DateRangeThisYear  DateRangeToken = "this_year"
	DateRangeLastYear  DateRangeToken = "last_year"
	DateRangeCustom    DateRangeToken = "custom"
)

var ErrUnknownDateRangeToken = errors.New("unknown date range token")

var dateRangeLabels = map[DateRangeToken]string{
	DateRangeToday:     "Today",
	DateRangeYesterday: "Yesterday",
	DateRangeThisWeek:  "This Week",
	DateRangeLastWeek:  "Last Week",
	DateRangeThisMonth: "This Month",
	DateRangeLastMonth: "Last Month",
	DateRangeThisYear:  "This Year",
	DateRangeLastYear:  "Last Year",
	DateRangeCustom:    "Custom Date",
}

// AllDateRangeTokens returns every token in display order
func AllDateRangeTokens() []DateRangeToken {
	return []DateRangeToken{
		DateRangeToday,
		DateRangeYesterday,
		DateRangeThisWeek,
		DateRangeLastWeek,
		DateRangeThisMonth,
		DateRangeLastMonth,
		DateRangeThisYear,
		DateRangeLastYear,
		DateRangeCustom,
	}
}

// IsValid reports whether t is a known token
func (t DateRangeToken) IsValid() bool {
	_, ok := dateRangeLabels[t]
	return ok
}

// Label returns the display label, e.g. "This Month"
func (t DateRangeToken) Label() string {
	if label, ok := dateRangeLabels[t]; ok {
		return label
	}
	return string(t)
}

// ParseDateRangeToken accepts either the token ("this_month") or its label ("This Month").
func ParseDateRangeToken(s string) (DateRangeToken, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	if normalized == "custom_date" {
		normalized = string(DateRangeCustom)
	}

	token := DateRangeToken(normalized)
	if !token.IsValid() {
		return "", ErrUnknownDateRangeToken
	}
	return token, nil
}

// DateRange is an inclusive [Start, End] window
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// IsInverted reports whether Start falls after End. Only custom ranges can be inverted.
func (r DateRange) IsInverted() bool {
	return r.Start.After(r.End)
}
