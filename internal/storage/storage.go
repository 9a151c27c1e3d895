package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNoAssignedSeat is returned by GetFloorWardens when the issue raiser
	// has no current seat (or no longer exists), so the seat -> room ->
	// floor traversal cannot start.
	ErrNoAssignedSeat = errors.New("issue raiser does not have an assigned seat")
	// ErrIssueNotFound is returned by GetFloorWardens when the issue itself
	// is gone.
	ErrIssueNotFound = errors.New("issue not found")
)

type Storage interface {
	// Users
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error

	// Issues
	CreateIssue(issue *models.Issue) error
	GetIssueByID(id string) (*models.Issue, error)
	UpdateIssueGuarded(issueID string, observed models.IssueStatus, fields map[string]interface{}) (int64, error)
	ListIssues(f IssueFilter) ([]models.Issue, int64, error)
	GetFloorWardens(issueID string) ([]string, error)

	// Comments and reactions
	CreateComment(comment *models.Comment) error
	GetCommentByID(id string) (*models.Comment, error)
	UpsertReaction(reaction *models.Reaction) error

	// Announcements
	CreateAnnouncement(a *models.Announcement) error
	GetAnnouncementByID(id string) (*models.Announcement, error)
	ListAnnouncements(hostelID *string, limit, offset int) ([]models.Announcement, int64, error)

	// Lost & found
	CreateLostItem(item *models.LostItem) error
	GetLostItemByID(id string) (*models.LostItem, error)
	UpdateLostItem(item *models.LostItem) error
	ListLostItems(status *models.LostItemStatus, limit, offset int) ([]models.LostItem, int64, error)
	SetClaimOTP(itemID, claimantID, otp string) error
	GetClaimOTP(itemID string) (claimantID, otp string, err error)
	DeleteClaimOTP(itemID string) error

	// Residence / inventory
	GetSeatByID(id string) (*models.Seat, error)
	GetHostelTree(hostelID string) (*models.Hostel, error)
	ListHostels() ([]models.Hostel, error)
	GetOccupiedSeatIDs(hostelID string) ([]string, error)
	AssignWardenToFloor(wardenID, floorID string) error
	RemoveWardenFromFloor(wardenID, floorID string) error
	AssignSeat(userID string, seatID *string) error
}

// IssueFilter describes an issue listing. Nil pointer fields are not applied.
// WardenID narrows the listing to issues whose raiser currently resides on a
// floor assigned to that warden.
type IssueFilter struct {
	RaisedByID   *string
	AssignedToID *string
	WardenID     *string
	Status       *models.IssueStatus
	Priority     *models.IssuePriority
	GroupTag     *string
	Page         int
	Limit        int
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// --- Users ---

func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// --- Issues ---

func (s *Service) CreateIssue(issue *models.Issue) error {
	if issue.Status == "" {
		issue.Status = models.StatusReported
	}
	if err := s.DB.Create(issue).Error; err != nil {
		log.Printf("ERROR: Failed to create issue for room %s: %v", issue.RoomID, err)
		return err
	}
	return nil
}

func (s *Service) GetIssueByID(id string) (*models.Issue, error) {
	var issue models.Issue
	err := s.DB.First(&issue, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// UpdateIssueGuarded applies fields to the issue only if its status still
// equals the status observed during the permission check. A zero row count
// means a concurrent edit moved the issue first and nothing was written.
func (s *Service) UpdateIssueGuarded(issueID string, observed models.IssueStatus, fields map[string]interface{}) (int64, error) {
	res := s.DB.Model(&models.Issue{}).
		Where("id = ? AND status = ?", issueID, observed).
		Updates(fields)
	if res.Error != nil {
		log.Printf("ERROR: Failed to update issue %s: %v", issueID, res.Error)
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *Service) ListIssues(f IssueFilter) ([]models.Issue, int64, error) {
	db := s.DB.Model(&models.Issue{})

	if f.RaisedByID != nil {
		db = db.Where("issues.raised_by_id = ?", *f.RaisedByID)
	}
	if f.AssignedToID != nil {
		db = db.Where("issues.assigned_to_id = ?", *f.AssignedToID)
	}
	if f.Status != nil {
		db = db.Where("issues.status = ?", *f.Status)
	}
	if f.Priority != nil {
		db = db.Where("issues.priority = ?", *f.Priority)
	}
	if f.GroupTag != nil {
		db = db.Where("issues.group_tag = ?", *f.GroupTag)
	}
	if f.WardenID != nil {
		// Walk the raiser's current residence chain, not the room recorded
		// on the issue.
		db = db.
			Joins("JOIN users AS raiser ON raiser.id = issues.raised_by_id").
			Joins("JOIN seats ON seats.id = raiser.seat_id").
			Joins("JOIN rooms ON rooms.id = seats.room_id").
			Joins("JOIN floor_wardens ON floor_wardens.floor_id = rooms.floor_id").
			Where("floor_wardens.user_id = ?", *f.WardenID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = config.DefaultPageLimit
	}
	if limit > config.MaxPageLimit {
		limit = config.MaxPageLimit
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	var issues []models.Issue
	err := db.Order("issues.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&issues).Error
	if err != nil {
		log.Printf("ERROR: Failed to list issues: %v", err)
		return nil, 0, err
	}
	return issues, total, nil
}

// GetFloorWardens returns the user IDs of every warden assigned to the floor
// of the issue raiser's current seat. The full raiser -> seat -> room ->
// floor -> wardens traversal lives here so policy code never touches it.
func (s *Service) GetFloorWardens(issueID string) ([]string, error) {
	var issue models.Issue
	if err := s.DB.First(&issue, "id = ?", issueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}

	var raiser models.User
	if err := s.DB.First(&raiser, "id = ?", issue.RaisedByID).Error; err != nil {
		// A dangling raiser row breaks the traversal the same way a missing
		// seat does.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAssignedSeat
		}
		return nil, err
	}
	if raiser.SeatID == nil {
		return nil, ErrNoAssignedSeat
	}

	var wardenIDs []string
	err := s.DB.Table("floor_wardens").
		Joins("JOIN rooms ON rooms.floor_id = floor_wardens.floor_id").
		Joins("JOIN seats ON seats.room_id = rooms.id").
		Where("seats.id = ?", *raiser.SeatID).
		Pluck("floor_wardens.user_id", &wardenIDs).Error
	if err != nil {
		log.Printf("ERROR: Failed to resolve floor wardens for issue %s: %v", issueID, err)
		return nil, err
	}
	return wardenIDs, nil
}

// --- Comments and reactions ---

func (s *Service) CreateComment(comment *models.Comment) error {
	return s.DB.Create(comment).Error
}

func (s *Service) GetCommentByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := s.DB.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpsertReaction inserts the reaction or, if the (target, user) pair already
// reacted, overwrites the stored type in place.
func (s *Service) UpsertReaction(reaction *models.Reaction) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "target_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "target_type", "updated_at"}),
	}).Create(reaction).Error
}

// --- Announcements ---

func (s *Service) CreateAnnouncement(a *models.Announcement) error {
	return s.DB.Create(a).Error
}

func (s *Service) GetAnnouncementByID(id string) (*models.Announcement, error) {
	var a models.Announcement
	err := s.DB.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) ListAnnouncements(hostelID *string, limit, offset int) ([]models.Announcement, int64, error) {
	db := s.DB.Model(&models.Announcement{})
	if hostelID != nil {
		// Hostel-scoped announcements plus the portal-wide ones.
		db = db.Where("hostel_id = ? OR hostel_id IS NULL", *hostelID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Announcement
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// --- Lost & found ---

func (s *Service) CreateLostItem(item *models.LostItem) error {
	if item.Status == "" {
		item.Status = models.LostItemOpen
	}
	return s.DB.Create(item).Error
}

func (s *Service) GetLostItemByID(id string) (*models.LostItem, error) {
	var item models.LostItem
	err := s.DB.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) UpdateLostItem(item *models.LostItem) error {
	return s.DB.Save(item).Error
}

func (s *Service) ListLostItems(status *models.LostItemStatus, limit, offset int) ([]models.LostItem, int64, error) {
	db := s.DB.Model(&models.LostItem{})
	if status != nil {
		db = db.Where("status = ?", *status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.LostItem
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func claimKey(itemID string) string {
	return "lostfound:claim:" + itemID
}

// SetClaimOTP stores the claim handshake code in Redis with a TTL. The value
// bundles the claimant so confirmation can verify who requested the claim.
func (s *Service) SetClaimOTP(itemID, claimantID, otp string) error {
	value := claimantID + ":" + otp
	return s.Redis.Set(s.Ctx, claimKey(itemID), value, config.ClaimOTPTTL).Err()
}

func (s *Service) GetClaimOTP(itemID string) (string, string, error) {
	value, err := s.Redis.Get(s.Ctx, claimKey(itemID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", "", nil
	}
	if err != nil {
		return "", "", err
	}
	for i := 0; i < len(value); i++ {
		if value[i] == ':' {
			return value[:i], value[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("malformed claim entry for item %s", itemID)
}

func (s *Service) DeleteClaimOTP(itemID string) error {
	return s.Redis.Del(s.Ctx, claimKey(itemID)).Err()
}

// --- Residence / inventory ---

func (s *Service) GetSeatByID(id string) (*models.Seat, error) {
	var seat models.Seat
	err := s.DB.First(&seat, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

// GetHostelTree loads a hostel with its full block/floor/room/seat hierarchy.
func (s *Service) GetHostelTree(hostelID string) (*models.Hostel, error) {
	var hostel models.Hostel
	err := s.DB.
		Preload("Blocks.Floors.Rooms.Seats").
		First(&hostel, "id = ?", hostelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (s *Service) ListHostels() ([]models.Hostel, error) {
	var hostels []models.Hostel
	if err := s.DB.Order("name ASC").Find(&hostels).Error; err != nil {
		return nil, err
	}
	return hostels, nil
}

// GetOccupiedSeatIDs returns the seats in the hostel that currently have a
// resident.
func (s *Service) GetOccupiedSeatIDs(hostelID string) ([]string, error) {
	var seatIDs []string
	err := s.DB.Model(&models.User{}).
		Joins("JOIN seats ON seats.id = users.seat_id").
		Joins("JOIN rooms ON rooms.id = seats.room_id").
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Joins("JOIN blocks ON blocks.id = floors.block_id").
		Where("blocks.hostel_id = ?", hostelID).
		Pluck("users.seat_id", &seatIDs).Error
	if err != nil {
		log.Printf("ERROR: Failed to load occupied seats for hostel %s: %v", hostelID, err)
		return nil, err
	}
	return seatIDs, nil
}

func (s *Service) AssignWardenToFloor(wardenID, floorID string) error {
	return s.DB.Model(&models.Floor{ID: floorID}).
		Association("Wardens").
		Append(&models.User{ID: wardenID})
}

func (s *Service) RemoveWardenFromFloor(wardenID, floorID string) error {
	return s.DB.Model(&models.Floor{ID: floorID}).
		Association("Wardens").
		Delete(&models.User{ID: wardenID})
}

// AssignSeat places a user on a seat, or clears their residence when seatID
// is nil.
func (s *Service) AssignSeat(userID string, seatID *string) error {
	return s.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("seat_id", seatID).Error
}
