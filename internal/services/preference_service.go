package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"finance-history/internal/models"
	"finance-history/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidPreference = errors.New("invalid date range preference")
)

type preferenceService struct {
	repo         repositories.PreferenceRepositoryInterface
	defaultToken models.DateRangeToken
	metrics      MetricsRecorderInterface
}

func NewPreferenceService(
	repo repositories.PreferenceRepositoryInterface,
	defaultToken models.DateRangeToken,
	metrics MetricsRecorderInterface,
) PreferenceServiceInterface {
	return &preferenceService{
		repo:         repo,
		defaultToken: defaultToken,
		metrics:      metrics,
	}
}

// GetLastDateRange returns the stored range, or the configured default when nothing usable is stored.
func (s *preferenceService) GetLastDateRange(ctx context.Context, userID uuid.UUID) (*models.DateRangePreference, error) {
	stored, err := s.repo.Get(ctx, userID, models.PreferenceKeyLastDateRange)
	if err != nil {
		if errors.Is(err, repositories.ErrPreferenceNotFound) {
			return s.defaultPreference(), nil
		}
		return nil, fmt.Errorf("failed to load date range preference: %w", err)
	}

	var pref models.DateRangePreference
	if err := json.Unmarshal([]byte(stored.Value), &pref); err != nil {
		slog.Warn("discarding unreadable date range preference",
			"user_id", userID,
			"error", err)
		return s.defaultPreference(), nil
	}

	if err := validateDateRangePreference(pref); err != nil {
		slog.Warn("discarding invalid date range preference",
			"user_id", userID,
			"token", pref.Token,
			"error", err)
		return s.defaultPreference(), nil
	}

	return &pref, nil
}

func (s *preferenceService) SetLastDateRange(ctx context.Context, userID uuid.UUID, pref models.DateRangePreference) error {
	if err := validateDateRangePreference(pref); err != nil {
		return err
	}

	if pref.Token != models.DateRangeCustom {
		pref.CustomStart = nil
		pref.CustomEnd = nil
	}

	value, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("failed to encode date range preference: %w", err)
	}

	if err := s.repo.Upsert(ctx, &models.UserPreference{
		UserID: userID,
		Key:    models.PreferenceKeyLastDateRange,
		Value:  string(value),
	}); err != nil {
		return fmt.Errorf("failed to store date range preference: %w", err)
	}

	s.metrics.IncrementCounter("preference.write", nil)

	slog.Debug("date range preference stored",
		"user_id", userID,
		"token", pref.Token)

	return nil
}

func (s *preferenceService) defaultPreference() *models.DateRangePreference {
	return &models.DateRangePreference{Token: s.defaultToken}
}

func validateDateRangePreference(pref models.DateRangePreference) error {
	if !pref.Token.IsValid() {
		return fmt.Errorf("%w: unknown token %q", ErrInvalidPreference, pref.Token)
	}
	if pref.Token == models.DateRangeCustom && (pref.CustomStart == nil || pref.CustomEnd == nil) {
		return fmt.Errorf("%w: custom range requires both start and end", ErrInvalidPreference)
	}
	return nil
}
