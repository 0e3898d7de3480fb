package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-history/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingAmountBound = errors.New("amount filter is missing a required bound")
	ErrInvalidDate        = errors.New("dates must be YYYY-MM-DD or RFC3339")
)

const dateOnlyLayout = "2006-01-02"

// HistoryQuery holds the query parameters shared by the transaction and category views
type HistoryQuery struct {
	Range        string `query:"range" validate:"omitempty,date_range_token"`
	StartDate    string `query:"startDate"`
	EndDate      string `query:"endDate"`
	AmountFilter string `query:"amountFilter" validate:"omitempty,amount_filter"`
	Min          string `query:"min" validate:"omitempty,money"`
	Max          string `query:"max" validate:"omitempty,money"`
	Exact        string `query:"exact" validate:"omitempty,money"`
	Wallet       string `query:"wallet" validate:"omitempty,max=100"`
	Type         string `query:"type" validate:"omitempty,transaction_scope"`
	Note         string `query:"note" validate:"omitempty,max=200"`
}

// HasRange reports whether the caller picked a range explicitly
func (q HistoryQuery) HasRange() bool {
	return strings.TrimSpace(q.Range) != ""
}

// DateRangeToken parses Range. Call HasRange first; an empty Range is an error here.
func (q HistoryQuery) DateRangeToken() (models.DateRangeToken, error) {
	return models.ParseDateRangeToken(q.Range)
}

// CustomBounds parses StartDate and EndDate. A date without a time covers the whole day, so
// endDate=2024-03-10 ends at 23:59:59.999999999 UTC.
func (q HistoryQuery) CustomBounds() (*time.Time, *time.Time, error) {
	start, err := parseBound(q.StartDate, false)
	if err != nil {
		return nil, nil, fmt.Errorf("startDate: %w", err)
	}
	end, err := parseBound(q.EndDate, true)
	if err != nil {
		return nil, nil, fmt.Errorf("endDate: %w", err)
	}
	return start, end, nil
}

// AmountRule builds the amount clause. Values were checked by the money validator.
func (q HistoryQuery) AmountRule() (models.AmountRule, error) {
	switch models.AmountFilterType(strings.ToLower(q.AmountFilter)) {
	case "", models.AmountFilterAll:
		return models.AnyAmount{}, nil
	case models.AmountFilterOver:
		minAmount, err := requiredAmount("min", q.Min)
		if err != nil {
			return nil, err
		}
		return models.AmountOver{Min: minAmount}, nil
	case models.AmountFilterUnder:
		maxAmount, err := requiredAmount("max", q.Max)
		if err != nil {
			return nil, err
		}
		return models.AmountUnder{Max: maxAmount}, nil
	case models.AmountFilterBetween:
		minAmount, err := requiredAmount("min", q.Min)
		if err != nil {
			return nil, err
		}
		maxAmount, err := requiredAmount("max", q.Max)
		if err != nil {
			return nil, err
		}
		return models.AmountBetween{Min: minAmount, Max: maxAmount}, nil
	case models.AmountFilterExact:
		exact, err := requiredAmount("exact", q.Exact)
		if err != nil {
			return nil, err
		}
		return models.AmountExact{Value: exact}, nil
	default:
		return nil, fmt.Errorf("unknown amount filter %q", q.AmountFilter)
	}
}

// TransactionSpec builds the filter for the transaction view
func (q HistoryQuery) TransactionSpec() (models.FilterSpec, error) {
	spec, err := q.baseSpec()
	if err != nil {
		return models.FilterSpec{}, err
	}

	switch scope := strings.ToLower(q.Type); scope {
	case "", "all":
		spec.Scope = models.AnyScope{}
	default:
		spec.Scope = models.TypeScope{Type: scope}
	}

	return spec, nil
}

// CategorySpec builds the filter for the category view. Type is ignored there.
func (q HistoryQuery) CategorySpec(parentCategoryID uuid.UUID) (models.FilterSpec, error) {
	spec, err := q.baseSpec()
	if err != nil {
		return models.FilterSpec{}, err
	}
	spec.Scope = models.ParentCategoryScope{ParentCategoryID: parentCategoryID}
	return spec, nil
}

func (q HistoryQuery) baseSpec() (models.FilterSpec, error) {
	amount, err := q.AmountRule()
	if err != nil {
		return models.FilterSpec{}, err
	}

	spec := models.FilterSpec{
		Amount:        amount,
		Wallet:        models.AnyWallet{},
		NoteSubstring: strings.TrimSpace(q.Note),
	}
	if wallet := strings.TrimSpace(q.Wallet); wallet != "" {
		spec.Wallet = models.WalletNamed{Name: wallet}
	}

	return spec, nil
}

func requiredAmount(field, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingAmountBound, field)
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	return amount, nil
}

func parseBound(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	day, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if endOfDay {
		day = day.Add(24*time.Hour - time.Nanosecond)
	}
	return &day, nil
}

// HistoryMeta describes how a history view was produced
type HistoryMeta struct {
	Range          models.DateRangeToken `json:"range"`
	RangeLabel     string                `json:"rangeLabel"`
	FetchedCount   int                   `json:"fetchedCount"`
	MalformedCount int                   `json:"malformedCount"`
}

// DateRangeOption is one entry of the date range picker
type DateRangeOption struct {
	Token     models.DateRangeToken `json:"token"`
	Label     string                `json:"label"`
	StartDate *time.Time            `json:"startDate,omitempty"`
	EndDate   *time.Time            `json:"endDate,omitempty"`
}
