package services

import (
	"errors"
	"fmt"
	"time"

	"finance-history/internal/models"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrMissingCustomBounds = fmt.Errorf("%w: custom date range requires both start and end", ErrInvalidArgument)
)

type dateRangeResolver struct {
	now func() time.Time
}

// NewDateRangeResolver returns a resolver that takes "now" from the given clock.
// A nil clock falls back to time.Now.
func NewDateRangeResolver(now func() time.Time) DateRangeResolverInterface {
	if now == nil {
		now = time.Now
	}
	return &dateRangeResolver{now: now}
}

// Resolve maps a token to concrete bounds in the clock's location. Custom bounds are returned
// verbatim, including inverted ranges.
func (r *dateRangeResolver) Resolve(token models.DateRangeToken, customStart, customEnd *time.Time) (models.DateRange, error) {
	now := r.now()
	today := startOfDay(now)

	switch token {
	case models.DateRangeToday:
		return dayRange(today), nil

	case models.DateRangeYesterday:
		return dayRange(today.AddDate(0, 0, -1)), nil

	case models.DateRangeThisWeek:
		return weekRange(startOfISOWeek(today)), nil

	case models.DateRangeLastWeek:
		return weekRange(startOfISOWeek(today).AddDate(0, 0, -7)), nil

	case models.DateRangeThisMonth:
		return monthRange(startOfMonth(today)), nil

	case models.DateRangeLastMonth:
		return monthRange(startOfMonth(today).AddDate(0, -1, 0)), nil

	case models.DateRangeThisYear:
		return yearRange(startOfYear(today)), nil

	case models.DateRangeLastYear:
		return yearRange(startOfYear(today).AddDate(-1, 0, 0)), nil

	case models.DateRangeCustom:
		if customStart == nil || customEnd == nil {
			return models.DateRange{}, ErrMissingCustomBounds
		}
		return models.DateRange{Start: *customStart, End: *customEnd}, nil

	default:
		return models.DateRange{}, fmt.Errorf("%w: unknown date range token %q", ErrInvalidArgument, token)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfISOWeek returns the Monday of the week containing t
func startOfISOWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func dayRange(day time.Time) models.DateRange {
	return models.DateRange{Start: day, End: endOfDay(day)}
}

func weekRange(monday time.Time) models.DateRange {
	return models.DateRange{Start: monday, End: endOfDay(monday.AddDate(0, 0, 6))}
}

func monthRange(first time.Time) models.DateRange {
	return models.DateRange{Start: first, End: endOfDay(first.AddDate(0, 1, -1))}
}

func yearRange(first time.Time) models.DateRange {
	return models.DateRange{Start: first, End: endOfDay(first.AddDate(1, 0, -1))}
}
