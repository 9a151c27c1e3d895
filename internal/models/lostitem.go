package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LostItemStatus is the handover state of a lost-and-found entry.
type LostItemStatus string

const (
	LostItemOpen     LostItemStatus = "OPEN"
	LostItemClaimed  LostItemStatus = "CLAIMED"
	LostItemReturned LostItemStatus = "RETURNED"
)

// LostItem is a found object registered by a resident. Handover is confirmed
// with a one-time code (kept in Redis, never persisted here).
type LostItem struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:text;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Image        string         `gorm:"type:text" json:"image"` // opaque storage reference
	Status       LostItemStatus `gorm:"type:text;not null;default:'OPEN'" json:"status"`
	ReportedByID string         `gorm:"index;not null" json:"reportedById"`
	ClaimedByID  *string        `gorm:"index" json:"claimedById,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *LostItem) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}
