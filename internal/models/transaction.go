package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrMissingCategory        = errors.New("transaction category is required")
	ErrMissingWallet          = errors.New("transaction wallet is required")
	ErrMissingTransactionDate = errors.New("transaction date is required")
)

// Transaction is a single income or expense entry recorded against a wallet and a category.
// Amount is always a non-negative magnitude; the direction lives in TransactionType.
type Transaction struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	TransactionType    string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CategoryID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	CategoryName       string          `gorm:"type:varchar(100);not null" json:"category_name"`
	CategoryIcon       string          `gorm:"type:varchar(100)" json:"category_icon,omitempty"`
	ParentCategoryID   *uuid.UUID      `gorm:"type:uuid;index" json:"parent_category_id,omitempty"`
	ParentCategoryName string          `gorm:"type:varchar(100)" json:"parent_category_name,omitempty"`
	ParentCategoryIcon string          `gorm:"type:varchar(100)" json:"parent_category_icon,omitempty"`
	WalletID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"wallet_id"`
	WalletName         string          `gorm:"type:varchar(100);not null" json:"wallet_name"`
	Note               string          `gorm:"type:text" json:"note,omitempty"`
	TransactionDate    time.Time       `gorm:"not null;index" json:"transaction_date"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`

	// Set when the amount arrived missing or unparseable and was replaced with zero.
	AmountMalformed bool `gorm:"-" json:"amount_malformed,omitempty"`
	// Set when the backend sent a type other than income or expense. Such rows
	// count toward Totals.Count but toward neither direction.
	TypeUnrecognized bool `gorm:"-" json:"type_unrecognized,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	// sqlite compares timestamps as text, so every stored instant shares one offset
	t.TransactionDate = t.TransactionDate.UTC()

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	t.TransactionDate = t.TransactionDate.UTC()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.CategoryID == uuid.Nil || strings.TrimSpace(t.CategoryName) == "" {
		return ErrMissingCategory
	}

	if t.WalletID == uuid.Nil || strings.TrimSpace(t.WalletName) == "" {
		return ErrMissingWallet
	}

	if t.TransactionDate.IsZero() {
		return ErrMissingTransactionDate
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.TransactionType == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TransactionTypeExpense
}

// HasParentCategory reports whether the leaf category sits under a parent.
func (t *Transaction) HasParentCategory() bool {
	return t.ParentCategoryID != nil && *t.ParentCategoryID != uuid.Nil
}

// PartitionKey is the id of the bucket the transaction rolls up into.
// A top-level category is its own parent.
func (t *Transaction) PartitionKey() uuid.UUID {
	if t.HasParentCategory() {
		return *t.ParentCategoryID
	}
	return t.CategoryID
}

// PartitionName returns the display name of the rollup bucket
func (t *Transaction) PartitionName() string {
	if t.HasParentCategory() {
		return t.ParentCategoryName
	}
	return t.CategoryName
}

// IsMalformed reports whether the backend record needed any lenient repair
func (t *Transaction) IsMalformed() bool {
	return t.AmountMalformed || t.TypeUnrecognized
}

// PartitionIcon returns the icon of the rollup bucket
func (t *Transaction) PartitionIcon() string {
	if t.HasParentCategory() {
		return t.ParentCategoryIcon
	}
	return t.CategoryIcon
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
