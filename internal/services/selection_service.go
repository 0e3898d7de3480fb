package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-history/internal/cache"
	"finance-history/internal/models"

	"github.com/google/uuid"
)

var (
	ErrSelectionNotFound    = errors.New("selection session not found or expired")
	ErrSelectionForbidden   = errors.New("selection session belongs to another user")
	ErrInvalidSelectionKind = errors.New("invalid selection kind")
	ErrEmptySelection       = errors.New("selected id is required")
)

type selectionService struct {
	sessions *cache.LRUCache[uuid.UUID, models.SelectionSession]
	now      func() time.Time
	metrics  MetricsRecorderInterface
}

// NewSelectionService keeps picker sessions in memory until they expire or are cleared.
func NewSelectionService(sessions *cache.LRUCache[uuid.UUID, models.SelectionSession], now func() time.Time, metrics MetricsRecorderInterface) SelectionServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &selectionService{
		sessions: sessions,
		now:      now,
		metrics:  metrics,
	}
}

func (s *selectionService) Begin(userID uuid.UUID, kind models.SelectionKind) (*models.SelectionSession, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelectionKind, kind)
	}

	now := s.now()
	session := models.SelectionSession{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Status:    models.SelectionStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessions.TTL()),
	}
	s.sessions.Set(session.ID, session)

	s.metrics.IncrementCounter("selection.event", map[string]string{"event": "begin"})
	s.publishActive()

	slog.Debug("selection session started",
		"session_id", session.ID,
		"user_id", userID,
		"kind", kind)

	return &session, nil
}

// Complete records the picked value. Picking again before the session expires overwrites it.
func (s *selectionService) Complete(userID, sessionID uuid.UUID, selectedID, selectedLabel string) (*models.SelectionSession, error) {
	selectedID = strings.TrimSpace(selectedID)
	if selectedID == "" {
		return nil, ErrEmptySelection
	}

	session, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.Status = models.SelectionStatusCompleted
	session.SelectedID = selectedID
	session.SelectedLabel = strings.TrimSpace(selectedLabel)

	if !s.sessions.Replace(sessionID, *session) {
		return nil, ErrSelectionNotFound
	}

	s.metrics.IncrementCounter("selection.event", map[string]string{"event": "complete"})

	return session, nil
}

func (s *selectionService) Get(userID, sessionID uuid.UUID) (*models.SelectionSession, error) {
	return s.lookup(userID, sessionID)
}

func (s *selectionService) Clear(userID, sessionID uuid.UUID) error {
	if _, err := s.lookup(userID, sessionID); err != nil {
		return err
	}

	s.sessions.Delete(sessionID)
	s.metrics.IncrementCounter("selection.event", map[string]string{"event": "clear"})
	s.publishActive()

	return nil
}

func (s *selectionService) lookup(userID, sessionID uuid.UUID) (*models.SelectionSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSelectionNotFound
	}
	if session.UserID != userID {
		slog.Warn("selection session accessed by another user",
			"session_id", sessionID,
			"owner_id", session.UserID,
			"user_id", userID)
		return nil, ErrSelectionForbidden
	}
	return &session, nil
}

func (s *selectionService) publishActive() {
	s.sessions.CleanExpired()
	s.metrics.RecordGauge("selection.active", float64(s.sessions.Size()), nil)
}
