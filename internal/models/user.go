package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines which operations a user may perform across the portal.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleWarden  Role = "WARDEN"
	RoleStaff   Role = "STAFF"
	RoleStudent Role = "STUDENT"
)

// IsValid reports whether r is one of the four known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleWarden, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// User represents any actor in the system: residents, wardens, maintenance
// staff and administrators share one table, distinguished by Role.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:text;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Role     Role   `gorm:"type:text;not null;default:'STUDENT'" json:"role"`

	// SeatID is the user's current residence seat. Nil for staff, wardens,
	// admins and students who have not been allotted a seat yet.
	SeatID *string `gorm:"index" json:"seatId,omitempty"`
	Seat   *Seat   `gorm:"foreignKey:SeatID" json:"seat,omitempty"`
}

// BeforeCreate generates a UUID for the user if the ID is not already set.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
