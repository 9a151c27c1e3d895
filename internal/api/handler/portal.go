package handler

import (
	"errors"
	"net/http"

	"hostelhub/backend/internal/announcement"
	"hostelhub/backend/internal/inventory"
	"hostelhub/backend/internal/lostfound"
	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// --- Announcements ---

type publishAnnouncementRequest struct {
	Title    string  `json:"title" binding:"required"`
	Body     string  `json:"body" binding:"required"`
	HostelID *string `json:"hostelId"`
}

func (h *Handler) PublishAnnouncement(c *gin.Context) {
	var req publishAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.Announcements.Publish(actorID(c), req.Title, req.Body, req.HostelID)
	if err != nil {
		switch {
		case errors.Is(err, announcement.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, announcement.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAnnouncements(c *gin.Context) {
	var q struct {
		HostelID *string `form:"hostelId"`
		Page     int     `form:"page"`
		Limit    int     `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, total, err := h.Announcements.List(q.HostelID, q.Page, q.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": list, "total": total})
}

// --- Lost & found ---

type reportItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (h *Handler) ReportLostItem(c *gin.Context) {
	var req reportItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.LostFound.ReportItem(actorID(c), req.Title, req.Description, req.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) ListLostItems(c *gin.Context) {
	var q struct {
		Status *models.LostItemStatus `form:"status"`
		Page   int                    `form:"page"`
		Limit  int                    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, total, err := h.LostFound.ListItems(q.Status, q.Page, q.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

func (h *Handler) ClaimLostItem(c *gin.Context) {
	otp, err := h.LostFound.RequestClaim(actorID(c), c.Param("id"))
	if err != nil {
		writeLostFoundError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"otp": otp})
}

func (h *Handler) ConfirmLostItemHandover(c *gin.Context) {
	var req struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.LostFound.ConfirmHandover(actorID(c), c.Param("id"), req.OTP); err != nil {
		writeLostFoundError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.LostItemReturned})
}

func writeLostFoundError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lostfound.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, lostfound.ErrNotReporter):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, lostfound.ErrNotClaimable),
		errors.Is(err, lostfound.ErrNotClaimed),
		errors.Is(err, lostfound.ErrOwnItem):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, lostfound.ErrBadOTP):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// --- Inventory ---

func (h *Handler) ListHostels(c *gin.Context) {
	hostels, err := h.Storage.ListHostels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hostels": hostels})
}

func (h *Handler) HostelOccupancy(c *gin.Context) {
	occupancy, err := h.Inventory.Occupancy(c.Param("id"))
	if err != nil {
		if errors.Is(err, inventory.ErrHostelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, occupancy)
}
