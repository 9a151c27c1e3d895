package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hostel is the top of the residence hierarchy:
// hostel -> block -> floor -> room -> seat.
type Hostel struct {
	ID     string  `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"uniqueIndex;not null" json:"name"`
	Blocks []Block `gorm:"foreignKey:HostelID" json:"blocks,omitempty"`
}

type Block struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	HostelID string  `gorm:"index;not null" json:"hostelId"`
	Floors   []Floor `gorm:"foreignKey:BlockID" json:"floors,omitempty"`
}

// Floor carries the warden assignment. The floor_wardens join table is the
// sole source of delegated authority over issues raised by its residents.
type Floor struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Number  int    `gorm:"not null" json:"number"`
	BlockID string `gorm:"index;not null" json:"blockId"`
	Rooms   []Room `gorm:"foreignKey:FloorID" json:"rooms,omitempty"`
	Wardens []User `gorm:"many2many:floor_wardens" json:"wardens,omitempty"`
}

type Room struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Number   string `gorm:"not null" json:"number"`
	FloorID  string `gorm:"index;not null" json:"floorId"`
	Capacity int    `gorm:"not null;default:1" json:"capacity"`
	Seats    []Seat `gorm:"foreignKey:RoomID" json:"seats,omitempty"`
}

type Seat struct {
	ID     string `gorm:"primaryKey" json:"id"`
	Label  string `gorm:"not null" json:"label"`
	RoomID string `gorm:"index;not null" json:"roomId"`
	Room   *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (h *Hostel) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return
}

func (b *Block) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func (f *Floor) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (s *Seat) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
