package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountLenient(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "number", raw: `42.5`, want: "42.5", wantOK: true},
		{name: "numeric string", raw: `"19.99"`, want: "19.99", wantOK: true},
		{name: "padded string", raw: `" 7 "`, want: "7", wantOK: true},
		{name: "zero", raw: `0`, want: "0", wantOK: true},
		{name: "missing", raw: ``, want: "0", wantOK: false},
		{name: "null", raw: `null`, want: "0", wantOK: false},
		{name: "garbage string", raw: `"abc"`, want: "0", wantOK: false},
		{name: "negative", raw: `-3`, want: "0", wantOK: false},
		{name: "boolean", raw: `true`, want: "0", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmountLenient(json.RawMessage(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestStableID(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, StableID(id.String()))
	assert.Equal(t, uuid.Nil, StableID(""))
	assert.Equal(t, StableID("wallet-1"), StableID("wallet-1"))
	assert.NotEqual(t, StableID("wallet-1"), StableID("wallet-2"))
}

func TestTransactionRecord_ToTransaction(t *testing.T) {
	payload := `[
		{"id":"t1","userId":"u1","amount":"25.00","transactionType":"Expense","categoryId":"c1","categoryName":"Coffee",
		 "parentCategoryId":"p1","parentCategoryName":"Food","walletId":"w1","walletName":"Cash","note":"latte",
		 "transactionDate":"2024-03-10T08:30:00Z"},
		{"id":"t2","userId":"u1","amount":"oops","transactionType":"income","categoryId":"c2","categoryName":"Salary",
		 "walletId":"w1","walletName":"Cash","transactionDate":"2024-03-11"}
	]`

	var records []TransactionRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 2)

	first := records[0].ToTransaction()
	assert.Equal(t, TransactionTypeExpense, first.TransactionType)
	assert.True(t, decimal.NewFromInt(25).Equal(first.Amount))
	assert.False(t, first.AmountMalformed)
	require.NotNil(t, first.ParentCategoryID)
	assert.Equal(t, StableID("p1"), first.PartitionKey())
	assert.Equal(t, "Food", first.PartitionName())
	assert.Equal(t, time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC), first.TransactionDate.UTC())

	second := records[1].ToTransaction()
	assert.True(t, second.Amount.IsZero())
	assert.True(t, second.AmountMalformed)
	assert.Nil(t, second.ParentCategoryID)
	assert.Equal(t, StableID("c2"), second.PartitionKey())
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), second.TransactionDate)
}

func TestTransactionRecord_UnrecognizedType(t *testing.T) {
	transfer := TransactionRecord{ID: "t3", Amount: json.RawMessage(`50`), TransactionType: "Transfer"}.ToTransaction()
	assert.Equal(t, "transfer", transfer.TransactionType)
	assert.True(t, transfer.TypeUnrecognized)
	assert.False(t, transfer.AmountMalformed)
	assert.True(t, transfer.IsMalformed())

	missing := TransactionRecord{ID: "t4", Amount: json.RawMessage(`1`)}.ToTransaction()
	assert.True(t, missing.TypeUnrecognized)

	expense := TransactionRecord{ID: "t5", Amount: json.RawMessage(`1`), TransactionType: " EXPENSE "}.ToTransaction()
	assert.False(t, expense.TypeUnrecognized)
	assert.False(t, expense.IsMalformed())
}
