package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregatedCategoryView is one parent-category row of a history view
type AggregatedCategoryView struct {
	ParentCategoryID   uuid.UUID       `json:"parent_category_id"`
	ParentCategoryName string          `json:"parent_category_name"`
	ParentIcon         string          `json:"parent_icon,omitempty"`
	Transactions       []Transaction   `json:"transactions"`
	TotalCount         int64           `json:"total_count"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
}

// Totals holds the global figures of a history view. Income and Expense are split by
// direction; Net is Income minus Expense.
type Totals struct {
	Count   int64           `json:"count"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// AggregatedResult is the render-ready output of one history pipeline run
type AggregatedResult struct {
	Categories    []AggregatedCategoryView `json:"categories"`
	Totals        Totals                   `json:"totals"`
	ResolvedRange DateRange                `json:"resolved_range"`
	Chips         []string                 `json:"chips"`
}
