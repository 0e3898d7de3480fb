package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PreferenceKeyLastDateRange = "history.last_date_range"
)

var ErrEmptyPreferenceKey = errors.New("preference key is required")

// UserPreference is a single per-user key/value setting
type UserPreference struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeSave hook for UserPreference
func (p *UserPreference) BeforeSave(tx *gorm.DB) error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if p.Key == "" {
		return ErrEmptyPreferenceKey
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}

// TableName returns the table name for UserPreference
func (p *UserPreference) TableName() string {
	return "user_preferences"
}

// DateRangePreference is the JSON payload stored under PreferenceKeyLastDateRange.
// CustomStart and CustomEnd are only set for the custom token.
type DateRangePreference struct {
	Token       DateRangeToken `json:"token"`
	CustomStart *time.Time     `json:"custom_start,omitempty"`
	CustomEnd   *time.Time     `json:"custom_end,omitempty"`
}
