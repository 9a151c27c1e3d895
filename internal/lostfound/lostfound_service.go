// Package lostfound handles found-item registration and the OTP handshake
// used to confirm a handover between finder and owner.
package lostfound

import (
	"crypto/rand"
	"errors"
	"math/big"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"
)

var (
	ErrItemNotFound = errors.New("lost item not found")
	ErrNotReporter  = errors.New("only the reporter can confirm the handover")
	ErrNotClaimable = errors.New("item is not open for claims")
	ErrNotClaimed   = errors.New("item has no pending claim")
	ErrBadOTP       = errors.New("claim code is wrong or expired")
	ErrOwnItem      = errors.New("cannot claim an item you reported yourself")
)

// Service handles the business logic for lost & found items.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// ReportItem registers a found object under the reporter's name.
func (s *Service) ReportItem(reporterID, title, description, image string) (*models.LostItem, error) {
	item := &models.LostItem{
		Title:        title,
		Description:  description,
		Image:        image,
		Status:       models.LostItemOpen,
		ReportedByID: reporterID,
	}
	if err := s.Storage.CreateLostItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) ListItems(status *models.LostItemStatus, page, limit int) ([]models.LostItem, int64, error) {
	if limit <= 0 {
		limit = config.DefaultPageLimit
	}
	if page < 1 {
		page = 1
	}
	return s.Storage.ListLostItems(status, limit, (page-1)*limit)
}

// RequestClaim marks the item as claimed by the actor and returns a one-time
// code. The claimant shows the code to the reporter in person; the item only
// becomes RETURNED once the reporter confirms it.
func (s *Service) RequestClaim(claimantID, itemID string) (string, error) {
	item, err := s.Storage.GetLostItemByID(itemID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", ErrItemNotFound
	}
	if item.Status != models.LostItemOpen {
		return "", ErrNotClaimable
	}
	if item.ReportedByID == claimantID {
		return "", ErrOwnItem
	}

	otp, err := generateOTP(config.ClaimOTPLength)
	if err != nil {
		return "", err
	}
	if err := s.Storage.SetClaimOTP(itemID, claimantID, otp); err != nil {
		return "", err
	}

	item.Status = models.LostItemClaimed
	item.ClaimedByID = &claimantID
	if err := s.Storage.UpdateLostItem(item); err != nil {
		return "", err
	}
	return otp, nil
}

// ConfirmHandover finishes the handshake: the reporter enters the code the
// claimant received and the item is marked returned.
func (s *Service) ConfirmHandover(reporterID, itemID, otp string) error {
	item, err := s.Storage.GetLostItemByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	if item.ReportedByID != reporterID {
		return ErrNotReporter
	}
	if item.Status != models.LostItemClaimed || item.ClaimedByID == nil {
		return ErrNotClaimed
	}

	claimantID, stored, err := s.Storage.GetClaimOTP(itemID)
	if err != nil {
		return err
	}
	if stored == "" || stored != otp || claimantID != *item.ClaimedByID {
		return ErrBadOTP
	}

	item.Status = models.LostItemReturned
	if err := s.Storage.UpdateLostItem(item); err != nil {
		return err
	}
	return s.Storage.DeleteClaimOTP(itemID)
}

func generateOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
