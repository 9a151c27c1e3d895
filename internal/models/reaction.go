package models

import "time"

// TargetType tags what kind of entity a reaction (or comment) points at.
type TargetType string

const (
	TargetIssue        TargetType = "ISSUE"
	TargetComment      TargetType = "COMMENT"
	TargetAnnouncement TargetType = "ANNOUNCEMENT"
)

func (t TargetType) IsValid() bool {
	switch t {
	case TargetIssue, TargetComment, TargetAnnouncement:
		return true
	}
	return false
}

// Reaction is keyed by (TargetID, UserID): reacting again overwrites the
// existing row instead of creating a second one.
type Reaction struct {
	TargetID   string     `gorm:"primaryKey" json:"targetId"`
	UserID     string     `gorm:"primaryKey" json:"userId"`
	TargetType TargetType `gorm:"type:text;not null" json:"targetType"`
	Type       string     `gorm:"type:text;not null" json:"type"` // e.g. "LIKE", "UPVOTE"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
