package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-history/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, 100).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// FindInRange retrieves a user's transactions within a date range. Bounds are
// compared in UTC, the offset every row is stored with.
func (r *transactionRepository) FindInRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time, parentCategoryID *uuid.UUID) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_date BETWEEN ? AND ?", userID, startDate.UTC(), endDate.UTC())

	if parentCategoryID != nil {
		query = query.Where(
			"(parent_category_id = ?) OR (parent_category_id IS NULL AND category_id = ?)",
			*parentCategoryID, *parentCategoryID,
		)
	}

	var transactions []models.Transaction
	if err := query.Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// CountByUser returns how many transactions a user has stored
func (r *transactionRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// DeleteByUser removes every stored transaction of a user and reports how many went
func (r *transactionRepository) DeleteByUser(userID uuid.UUID) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
