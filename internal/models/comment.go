package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment belongs to exactly one issue. A reply carries the parent comment's
// ID but still hangs off the same issue, so authorization always resolves
// through IssueID.
type Comment struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	AuthorID string  `gorm:"index;not null" json:"authorId"`
	IssueID  string  `gorm:"index;not null" json:"issueId"`
	ParentID *string `gorm:"index" json:"parentId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
