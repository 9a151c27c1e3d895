// Package storagetest provides a testify mock of storage.Storage shared by
// the service test suites.
package storagetest

import (
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of the storage.Storage interface.
// It uses testify/mock to allow flexible expectation setting in tests.
type MockStorage struct {
	mock.Mock
}

var _ storage.Storage = (*MockStorage)(nil)

// Users

func (m *MockStorage) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// Issues

func (m *MockStorage) CreateIssue(issue *models.Issue) error {
	args := m.Called(issue)
	return args.Error(0)
}

func (m *MockStorage) GetIssueByID(id string) (*models.Issue, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockStorage) UpdateIssueGuarded(issueID string, observed models.IssueStatus, fields map[string]interface{}) (int64, error) {
	args := m.Called(issueID, observed, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) ListIssues(f storage.IssueFilter) ([]models.Issue, int64, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Issue), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) GetFloorWardens(issueID string) ([]string, error) {
	args := m.Called(issueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Comments and reactions

func (m *MockStorage) CreateComment(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockStorage) GetCommentByID(id string) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockStorage) UpsertReaction(reaction *models.Reaction) error {
	args := m.Called(reaction)
	return args.Error(0)
}

// Announcements

func (m *MockStorage) CreateAnnouncement(a *models.Announcement) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStorage) GetAnnouncementByID(id string) (*models.Announcement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Announcement), args.Error(1)
}

func (m *MockStorage) ListAnnouncements(hostelID *string, limit, offset int) ([]models.Announcement, int64, error) {
	args := m.Called(hostelID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Announcement), args.Get(1).(int64), args.Error(2)
}

// Lost & found

func (m *MockStorage) CreateLostItem(item *models.LostItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockStorage) GetLostItemByID(id string) (*models.LostItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LostItem), args.Error(1)
}

func (m *MockStorage) UpdateLostItem(item *models.LostItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockStorage) ListLostItems(status *models.LostItemStatus, limit, offset int) ([]models.LostItem, int64, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.LostItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) SetClaimOTP(itemID, claimantID, otp string) error {
	args := m.Called(itemID, claimantID, otp)
	return args.Error(0)
}

func (m *MockStorage) GetClaimOTP(itemID string) (string, string, error) {
	args := m.Called(itemID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteClaimOTP(itemID string) error {
	args := m.Called(itemID)
	return args.Error(0)
}

// Residence / inventory

func (m *MockStorage) GetSeatByID(id string) (*models.Seat, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seat), args.Error(1)
}

func (m *MockStorage) GetHostelTree(hostelID string) (*models.Hostel, error) {
	args := m.Called(hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hostel), args.Error(1)
}

func (m *MockStorage) ListHostels() ([]models.Hostel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hostel), args.Error(1)
}

func (m *MockStorage) GetOccupiedSeatIDs(hostelID string) ([]string, error) {
	args := m.Called(hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) AssignWardenToFloor(wardenID, floorID string) error {
	args := m.Called(wardenID, floorID)
	return args.Error(0)
}

func (m *MockStorage) RemoveWardenFromFloor(wardenID, floorID string) error {
	args := m.Called(wardenID, floorID)
	return args.Error(0)
}

func (m *MockStorage) AssignSeat(userID string, seatID *string) error {
	args := m.Called(userID, seatID)
	return args.Error(0)
}
