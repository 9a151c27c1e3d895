// Package announcement handles notices posted by admins and wardens.
package announcement

import (
	"errors"
	"strings"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"
)

var (
	ErrNotAllowed   = errors.New("only admins and wardens can publish announcements")
	ErrEmptyContent = errors.New("announcement title and body are required")
)

type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Publish creates an announcement, optionally scoped to one hostel.
func (s *Service) Publish(authorID, title, body string, hostelID *string) (*models.Announcement, error) {
	author, err := s.Storage.GetUserByID(authorID)
	if err != nil {
		return nil, err
	}
	if author == nil || (author.Role != models.RoleAdmin && author.Role != models.RoleWarden) {
		return nil, ErrNotAllowed
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrEmptyContent
	}

	a := &models.Announcement{
		Title:    title,
		Body:     body,
		AuthorID: author.ID,
		HostelID: hostelID,
	}
	if err := s.Storage.CreateAnnouncement(a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns announcements visible in the given hostel (hostel-scoped plus
// portal-wide), newest first.
func (s *Service) List(hostelID *string, page, limit int) ([]models.Announcement, int64, error) {
	if limit <= 0 {
		limit = config.DefaultPageLimit
	}
	if page < 1 {
		page = 1
	}
	return s.Storage.ListAnnouncements(hostelID, limit, (page-1)*limit)
}
