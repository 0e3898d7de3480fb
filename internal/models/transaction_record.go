package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionNamespace derives stable ids for records whose ids are not UUIDs.
var transactionNamespace = uuid.MustParse("6f1c1f0e-8a55-4d3b-9a0c-2b9d4c7e5a10")

var recordDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TransactionRecord is the transaction shape returned by the remote finance backend.
// ToTransaction normalizes it into a Transaction.
type TransactionRecord struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Amount             json.RawMessage `json:"amount"`
	TransactionType    string          `json:"transactionType"`
	CategoryID         string          `json:"categoryId"`
	CategoryName       string          `json:"categoryName"`
	CategoryIcon       string          `json:"categoryIcon"`
	ParentCategoryID   string          `json:"parentCategoryId"`
	ParentCategoryName string          `json:"parentCategoryName"`
	ParentCategoryIcon string          `json:"parentCategoryIcon"`
	WalletID           string          `json:"walletId"`
	WalletName         string          `json:"walletName"`
	Note               string          `json:"note"`
	TransactionDate    string          `json:"transactionDate"`
}

// ToTransaction converts the record into a Transaction. A missing, non-numeric or negative
// amount becomes zero and the transaction is flagged AmountMalformed instead of failing.
// A type other than income or expense is kept as sent and flagged TypeUnrecognized.
func (r TransactionRecord) ToTransaction() Transaction {
	amount, ok := ParseAmountLenient(r.Amount)
	transactionType := strings.ToLower(strings.TrimSpace(r.TransactionType))

	tx := Transaction{
		ID:                 StableID(r.ID),
		UserID:             StableID(r.UserID),
		TransactionType:    transactionType,
		TypeUnrecognized:   !IsValidTransactionType(transactionType),
		Amount:             amount,
		AmountMalformed:    !ok,
		CategoryID:         StableID(r.CategoryID),
		CategoryName:       r.CategoryName,
		CategoryIcon:       r.CategoryIcon,
		ParentCategoryName: r.ParentCategoryName,
		ParentCategoryIcon: r.ParentCategoryIcon,
		WalletID:           StableID(r.WalletID),
		WalletName:         r.WalletName,
		Note:               r.Note,
		TransactionDate:    parseRecordDate(r.TransactionDate),
	}

	if strings.TrimSpace(r.ParentCategoryID) != "" {
		parentID := StableID(r.ParentCategoryID)
		tx.ParentCategoryID = &parentID
	}

	return tx
}

// ParseAmountLenient reads a JSON number or numeric string. The second return value is
// false when the input was missing, unparseable or negative, in which case zero is returned.
func ParseAmountLenient(raw json.RawMessage) (decimal.Decimal, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, false
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return decimal.Zero, false
		}
		text = strings.TrimSpace(s)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, false
	}

	return amount, true
}

// StableID parses s as a UUID, or derives a deterministic one from it.
// An empty string maps to uuid.Nil.
func StableID(s string) uuid.UUID {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil
	}
	if id, err := uuid.Parse(s); err == nil {
		return id
	}
	return uuid.NewSHA1(transactionNamespace, []byte(s))
}

func parseRecordDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
