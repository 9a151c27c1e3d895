// Package inventory builds the hostel occupancy rollup:
// hostel -> block -> floor -> room seat counts against current residents.
package inventory

import (
	"errors"

	"hostelhub/backend/internal/storage"
)

var ErrHostelNotFound = errors.New("hostel not found")

type RoomOccupancy struct {
	RoomID   string `json:"roomId"`
	Number   string `json:"number"`
	Seats    int    `json:"seats"`
	Occupied int    `json:"occupied"`
}

type FloorOccupancy struct {
	FloorID  string          `json:"floorId"`
	Number   int             `json:"number"`
	Seats    int             `json:"seats"`
	Occupied int             `json:"occupied"`
	Rooms    []RoomOccupancy `json:"rooms"`
}

type BlockOccupancy struct {
	BlockID  string           `json:"blockId"`
	Name     string           `json:"name"`
	Seats    int              `json:"seats"`
	Occupied int              `json:"occupied"`
	Floors   []FloorOccupancy `json:"floors"`
}

type HostelOccupancy struct {
	HostelID string           `json:"hostelId"`
	Name     string           `json:"name"`
	Seats    int              `json:"seats"`
	Occupied int              `json:"occupied"`
	Blocks   []BlockOccupancy `json:"blocks"`
}

// Service assembles occupancy views from the residence hierarchy.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Occupancy returns the seat counts for one hostel, rolled up at every level
// of the hierarchy.
func (s *Service) Occupancy(hostelID string) (*HostelOccupancy, error) {
	hostel, err := s.Storage.GetHostelTree(hostelID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}

	occupiedIDs, err := s.Storage.GetOccupiedSeatIDs(hostelID)
	if err != nil {
		return nil, err
	}
	occupied := make(map[string]bool, len(occupiedIDs))
	for _, id := range occupiedIDs {
		occupied[id] = true
	}

	out := &HostelOccupancy{HostelID: hostel.ID, Name: hostel.Name}
	for _, block := range hostel.Blocks {
		bo := BlockOccupancy{BlockID: block.ID, Name: block.Name}
		for _, floor := range block.Floors {
			fo := FloorOccupancy{FloorID: floor.ID, Number: floor.Number}
			for _, room := range floor.Rooms {
				ro := RoomOccupancy{RoomID: room.ID, Number: room.Number, Seats: len(room.Seats)}
				for _, seat := range room.Seats {
					if occupied[seat.ID] {
						ro.Occupied++
					}
				}
				fo.Seats += ro.Seats
				fo.Occupied += ro.Occupied
				fo.Rooms = append(fo.Rooms, ro)
			}
			bo.Seats += fo.Seats
			bo.Occupied += fo.Occupied
			bo.Floors = append(bo.Floors, fo)
		}
		out.Seats += bo.Seats
		out.Occupied += bo.Occupied
		out.Blocks = append(out.Blocks, bo)
	}
	return out, nil
}
