package repositories

import (
	"context"
	"time"

	"finance-history/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	// FindInRange returns a user's transactions dated within [startDate, endDate], newest first.
	// A non-nil parentCategoryID keeps only transactions that roll up into that category.
	FindInRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time, parentCategoryID *uuid.UUID) ([]models.Transaction, error)
	CountByUser(userID uuid.UUID) (int64, error)
	DeleteByUser(userID uuid.UUID) (int64, error)
}

// PreferenceRepositoryInterface defines the contract for per-user key/value settings
type PreferenceRepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID, key string) (*models.UserPreference, error)
	Upsert(ctx context.Context, preference *models.UserPreference) error
	Delete(ctx context.Context, userID uuid.UUID, key string) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserPreference, error)
}
