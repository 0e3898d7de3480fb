package database

import (
	"fmt"
	"testing"
	"time"

	"finance-history/internal/config"
	"finance-history/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every pooled connection to :memory: would otherwise open its own empty database
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DatabaseDriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// TestTransactionOption tweaks a transaction built by CreateTestTransaction
type TestTransactionOption func(tx *models.Transaction)

func WithParentCategory(id uuid.UUID, name string) TestTransactionOption {
	return func(tx *models.Transaction) {
		tx.ParentCategoryID = &id
		tx.ParentCategoryName = name
	}
}

func WithType(transactionType string) TestTransactionOption {
	return func(tx *models.Transaction) {
		tx.TransactionType = transactionType
	}
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, amount string, date time.Time, opts ...TestTransactionOption) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString(amount),
		CategoryID:      uuid.New(),
		CategoryName:    "Groceries",
		WalletID:        uuid.New(),
		WalletName:      "Cash",
		TransactionDate: date,
	}
	for _, opt := range opts {
		opt(tx)
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"user_preferences",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
