package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // needed for pq.StringArray
	"gorm.io/gorm"
)

// IssueStatus is the lifecycle state of a maintenance issue. States form a
// strict total order and an accepted edit may never move an issue backwards.
type IssueStatus string

const (
	StatusReported   IssueStatus = "REPORTED"
	StatusAssigned   IssueStatus = "ASSIGNED"
	StatusInProgress IssueStatus = "IN_PROGRESS"
	StatusResolved   IssueStatus = "RESOLVED"
	StatusClosed     IssueStatus = "CLOSED"
)

// statusRanks fixes the order of the lifecycle. Comparison always goes
// through Rank so reordering the const block can never silently change
// transition rules.
var statusRanks = map[IssueStatus]int{
	StatusReported:   0,
	StatusAssigned:   1,
	StatusInProgress: 2,
	StatusResolved:   3,
	StatusClosed:     4,
}

// Rank returns the numeric position of s in the lifecycle, or -1 for an
// unknown status.
func (s IssueStatus) Rank() int {
	if r, ok := statusRanks[s]; ok {
		return r
	}
	return -1
}

// IsValid reports whether s is a known lifecycle state.
func (s IssueStatus) IsValid() bool {
	return s.Rank() >= 0
}

// Before reports whether s comes strictly earlier in the lifecycle than o.
func (s IssueStatus) Before(o IssueStatus) bool {
	return s.Rank() < o.Rank()
}

// IssuePriority is the raiser-declared urgency of an issue.
type IssuePriority string

const (
	PriorityLow       IssuePriority = "LOW"
	PriorityMedium    IssuePriority = "MEDIUM"
	PriorityHigh      IssuePriority = "HIGH"
	PriorityEmergency IssuePriority = "EMERGENCY"
)

func (p IssuePriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// Issue is a maintenance/complaint ticket raised by a resident.
//
// RoomID pins the location the issue was raised against at creation time.
// Delegated warden authority is NOT derived from it: wardens are resolved
// through the raiser's current seat on every request.
type Issue struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Priority    IssuePriority  `gorm:"type:text;not null;default:'LOW'" json:"priority"`
	Status      IssueStatus    `gorm:"type:text;not null;default:'REPORTED';index" json:"status"`
	IsPublic    bool           `gorm:"not null;default:false" json:"isPublic"`
	Remarks     string         `gorm:"type:text" json:"remarks"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"` // opaque storage references
	GroupTag    string         `gorm:"type:text;index" json:"groupTag"`

	RaisedByID   string  `gorm:"index;not null" json:"raisedById"`
	RaisedBy     *User   `gorm:"foreignKey:RaisedByID" json:"raisedBy,omitempty"`
	AssignedToID *string `gorm:"index" json:"assignedToId,omitempty"`
	AssignedTo   *User   `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	RoomID       string  `gorm:"index;not null" json:"roomId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Issue) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}
