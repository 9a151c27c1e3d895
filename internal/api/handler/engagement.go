package handler

import (
	"net/http"

	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type addCommentRequest struct {
	TargetID   string            `json:"targetId" binding:"required"`
	TargetType models.TargetType `json:"targetType" binding:"required"`
	Content    string            `json:"content" binding:"required"`
}

func (h *Handler) AddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.Issues.AddComment(actorID(c), req.TargetID, req.TargetType, req.Content)
	if err != nil {
		writeIssueError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

type reactRequest struct {
	TargetID   string            `json:"targetId" binding:"required"`
	TargetType models.TargetType `json:"targetType" binding:"required"`
	Type       string            `json:"type" binding:"required"`
}

func (h *Handler) React(c *gin.Context) {
	var req reactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reaction, err := h.Issues.React(actorID(c), req.TargetID, req.TargetType, req.Type)
	if err != nil {
		writeIssueError(c, err)
		return
	}
	c.JSON(http.StatusOK, reaction)
}
