package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement is a notice posted by an admin or warden, optionally scoped
// to a single hostel. A nil HostelID means portal-wide.
type Announcement struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"type:text;not null" json:"title"`
	Body     string  `gorm:"type:text;not null" json:"body"`
	AuthorID string  `gorm:"index;not null" json:"authorId"`
	HostelID *string `gorm:"index" json:"hostelId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
