package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-history/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPreferenceNotFound = errors.New("preference not found")
)

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepositoryInterface {
	return &preferenceRepository{
		db: db,
	}
}

func (r *preferenceRepository) Get(ctx context.Context, userID uuid.UUID, key string) (*models.UserPreference, error) {
	var preference models.UserPreference
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&preference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return &preference, nil
}

// Upsert inserts the preference or overwrites the stored value for the same user and key
func (r *preferenceRepository) Upsert(ctx context.Context, preference *models.UserPreference) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(preference).Error
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}

func (r *preferenceRepository) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		Delete(&models.UserPreference{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete preference: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPreferenceNotFound
	}
	return nil
}

func (r *preferenceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserPreference, error) {
	var preferences []models.UserPreference
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("key ASC").
		Find(&preferences).Error; err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	return preferences, nil
}
