package services

import (
	"finance-history/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregationOutput is the category breakdown plus global totals of a transaction list
type AggregationOutput struct {
	Categories []models.AggregatedCategoryView
	Totals     models.Totals
}

type transactionAggregator struct{}

func NewTransactionAggregator() TransactionAggregatorInterface {
	return &transactionAggregator{}
}

// Aggregate groups transactions by parent category in first-seen order. Category totals sum
// amounts regardless of direction; global totals keep income and expense apart.
func (a *transactionAggregator) Aggregate(txs []models.Transaction) AggregationOutput {
	output := AggregationOutput{
		Categories: make([]models.AggregatedCategoryView, 0),
		Totals: models.Totals{
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Net:     decimal.Zero,
		},
	}

	positions := make(map[uuid.UUID]int)

	for _, tx := range txs {
		key := tx.PartitionKey()

		idx, seen := positions[key]
		if !seen {
			idx = len(output.Categories)
			positions[key] = idx
			output.Categories = append(output.Categories, models.AggregatedCategoryView{
				ParentCategoryID:   key,
				ParentCategoryName: tx.PartitionName(),
				ParentIcon:         tx.PartitionIcon(),
				Transactions:       make([]models.Transaction, 0),
				TotalAmount:        decimal.Zero,
			})
		}

		view := &output.Categories[idx]
		view.Transactions = append(view.Transactions, tx)
		view.TotalCount++
		view.TotalAmount = view.TotalAmount.Add(tx.Amount)

		output.Totals.Count++
		switch tx.TransactionType {
		case models.TransactionTypeIncome:
			output.Totals.Income = output.Totals.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			output.Totals.Expense = output.Totals.Expense.Add(tx.Amount)
		}
	}

	output.Totals.Net = output.Totals.Income.Sub(output.Totals.Expense)

	return output
}
