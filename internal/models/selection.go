package models

import (
	"time"

	"github.com/google/uuid"
)

// SelectionKind names what a picker screen selects
type SelectionKind string

const (
	SelectionKindCategory SelectionKind = "category"
	SelectionKindWallet   SelectionKind = "wallet"
	SelectionKindIcon     SelectionKind = "icon"
)

// IsValid reports whether k is a known selection kind
func (k SelectionKind) IsValid() bool {
	switch k {
	case SelectionKindCategory, SelectionKindWallet, SelectionKindIcon:
		return true
	default:
		return false
	}
}

type SelectionStatus string

const (
	SelectionStatusPending   SelectionStatus = "pending"
	SelectionStatusCompleted SelectionStatus = "completed"
)

// SelectionSession carries a picker result from one screen back to the screen that opened it.
type SelectionSession struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Kind          SelectionKind   `json:"kind"`
	Status        SelectionStatus `json:"status"`
	SelectedID    string          `json:"selected_id,omitempty"`
	SelectedLabel string          `json:"selected_label,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

// IsCompleted returns true once a value has been picked
func (s *SelectionSession) IsCompleted() bool {
	return s.Status == SelectionStatusCompleted
}
