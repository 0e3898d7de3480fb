package services

import (
	"strings"

	"finance-history/internal/models"
)

type transactionFilter struct{}

func NewTransactionFilter() TransactionFilterInterface {
	return &transactionFilter{}
}

// Matches is the AND of the amount, wallet, scope and note clauses. Transaction dates are
// never inspected here; the fetch window already bounds them.
func (f *transactionFilter) Matches(tx *models.Transaction, spec models.FilterSpec) bool {
	return matchesAmount(tx, spec.Amount) &&
		matchesWallet(tx, spec.Wallet) &&
		matchesScope(tx, spec.Scope) &&
		matchesNote(tx, spec.NoteSubstring)
}

// Apply returns the matching transactions in input order
func (f *transactionFilter) Apply(txs []models.Transaction, spec models.FilterSpec) []models.Transaction {
	matched := make([]models.Transaction, 0, len(txs))
	for i := range txs {
		if f.Matches(&txs[i], spec) {
			matched = append(matched, txs[i])
		}
	}
	return matched
}

func matchesAmount(tx *models.Transaction, rule models.AmountRule) bool {
	switch r := rule.(type) {
	case models.AmountOver:
		return tx.Amount.GreaterThan(r.Min)
	case models.AmountUnder:
		return tx.Amount.LessThan(r.Max)
	case models.AmountBetween:
		// min > max is not normalized and matches nothing
		return tx.Amount.GreaterThanOrEqual(r.Min) && tx.Amount.LessThanOrEqual(r.Max)
	case models.AmountExact:
		return tx.Amount.Equal(r.Value)
	default:
		return true
	}
}

func matchesWallet(tx *models.Transaction, rule models.WalletRule) bool {
	if r, ok := rule.(models.WalletNamed); ok {
		return tx.WalletName == r.Name
	}
	return true
}

func matchesScope(tx *models.Transaction, rule models.ScopeRule) bool {
	switch r := rule.(type) {
	case models.TypeScope:
		return tx.TransactionType == r.Type
	case models.ParentCategoryScope:
		return tx.PartitionKey() == r.ParentCategoryID
	default:
		return true
	}
}

func matchesNote(tx *models.Transaction, substring string) bool {
	if substring == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Note), strings.ToLower(substring))
}
