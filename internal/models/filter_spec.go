package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmountFilterType names the amount rule variants
type AmountFilterType string

const (
	AmountFilterAll     AmountFilterType = "all"
	AmountFilterOver    AmountFilterType = "over"
	AmountFilterUnder   AmountFilterType = "under"
	AmountFilterBetween AmountFilterType = "between"
	AmountFilterExact   AmountFilterType = "exact"
)

// IsValidAmountFilterType checks if the amount filter type is valid
func IsValidAmountFilterType(t string) bool {
	switch AmountFilterType(t) {
	case AmountFilterAll, AmountFilterOver, AmountFilterUnder, AmountFilterBetween, AmountFilterExact:
		return true
	default:
		return false
	}
}

// AmountRule is one of AnyAmount, AmountOver, AmountUnder, AmountBetween or AmountExact.
type AmountRule interface {
	Kind() AmountFilterType
	isAmountRule()
}

type (
	AnyAmount     struct{}
	AmountOver    struct{ Min decimal.Decimal }
	AmountUnder   struct{ Max decimal.Decimal }
	AmountBetween struct{ Min, Max decimal.Decimal }
	AmountExact   struct{ Value decimal.Decimal }
)

func (AnyAmount) Kind() AmountFilterType     { return AmountFilterAll }
func (AmountOver) Kind() AmountFilterType    { return AmountFilterOver }
func (AmountUnder) Kind() AmountFilterType   { return AmountFilterUnder }
func (AmountBetween) Kind() AmountFilterType { return AmountFilterBetween }
func (AmountExact) Kind() AmountFilterType   { return AmountFilterExact }

func (AnyAmount) isAmountRule()     {}
func (AmountOver) isAmountRule()    {}
func (AmountUnder) isAmountRule()   {}
func (AmountBetween) isAmountRule() {}
func (AmountExact) isAmountRule()   {}

// WalletRule is either AnyWallet or WalletNamed.
type WalletRule interface {
	isWalletRule()
}

type (
	AnyWallet struct{}
	// WalletNamed matches on the wallet display name, not its id.
	WalletNamed struct{ Name string }
)

func (AnyWallet) isWalletRule()   {}
func (WalletNamed) isWalletRule() {}

// ScopeRule restricts by transaction direction (transaction view) or by parent
// category (category view).
type ScopeRule interface {
	isScopeRule()
}

type (
	AnyScope  struct{}
	TypeScope struct{ Type string }
	// ParentCategoryName only labels the chip; matching uses the id.
	ParentCategoryScope struct {
		ParentCategoryID   uuid.UUID
		ParentCategoryName string
	}
)

func (AnyScope) isScopeRule()            {}
func (TypeScope) isScopeRule()           {}
func (ParentCategoryScope) isScopeRule() {}

// FilterSpec is the post-fetch filter applied to every transaction in a history run.
// Nil rules behave like their Any variants.
type FilterSpec struct {
	Amount        AmountRule
	Wallet        WalletRule
	Scope         ScopeRule
	NoteSubstring string
}

// Chips renders short labels for the active filters, in amount, wallet, scope, note order.
func (f FilterSpec) Chips() []string {
	chips := make([]string, 0, 4)

	switch r := f.Amount.(type) {
	case AmountOver:
		chips = append(chips, "Over "+r.Min.StringFixed(2))
	case AmountUnder:
		chips = append(chips, "Under "+r.Max.StringFixed(2))
	case AmountBetween:
		chips = append(chips, fmt.Sprintf("Between %s and %s", r.Min.StringFixed(2), r.Max.StringFixed(2)))
	case AmountExact:
		chips = append(chips, "Exactly "+r.Value.StringFixed(2))
	}

	if r, ok := f.Wallet.(WalletNamed); ok {
		chips = append(chips, "Wallet: "+r.Name)
	}

	switch r := f.Scope.(type) {
	case TypeScope:
		switch r.Type {
		case TransactionTypeIncome:
			chips = append(chips, "Income")
		case TransactionTypeExpense:
			chips = append(chips, "Expense")
		}
	case ParentCategoryScope:
		if r.ParentCategoryName != "" {
			chips = append(chips, "Category: "+r.ParentCategoryName)
		} else {
			chips = append(chips, "Category")
		}
	}

	if f.NoteSubstring != "" {
		chips = append(chips, fmt.Sprintf("Note: %q", f.NoteSubstring))
	}

	return chips
}
