package handler

import (
	"hostelhub/backend/internal/announcement"
	"hostelhub/backend/internal/inventory"
	"hostelhub/backend/internal/issue"
	"hostelhub/backend/internal/lostfound"
	"hostelhub/backend/internal/storage"
)

// Handler bundles the portal services behind the HTTP surface.
type Handler struct {
	Storage       storage.Storage
	Issues        *issue.Service
	Announcements *announcement.Service
	LostFound     *lostfound.Service
	Inventory     *inventory.Service
}

func NewHandler(s storage.Storage) *Handler {
	return &Handler{
		Storage:       s,
		Issues:        issue.NewService(s),
		Announcements: announcement.NewService(s),
		LostFound:     lostfound.NewService(s),
		Inventory:     inventory.NewService(s),
	}
}
