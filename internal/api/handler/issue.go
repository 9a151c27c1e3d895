package handler

import (
	"net/http"

	"hostelhub/backend/internal/issue"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// writeIssueError maps the engine's outcome taxonomy onto HTTP statuses.
// Anything without a kind is an unexpected internal failure and is not
// leaked to the caller.
func writeIssueError(c *gin.Context, err error) {
	switch issue.KindOf(err) {
	case issue.KindAuth:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case issue.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case issue.KindImpossibleTask:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case issue.KindInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case issue.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

type createIssueRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	Priority    models.IssuePriority `json:"priority"`
	IsPublic    bool                 `json:"isPublic"`
	Images      []string             `json:"images"`
	GroupTag    string               `json:"groupTag"`
	RoomID      string               `json:"roomId"`
}

func (h *Handler) CreateIssue(c *gin.Context) {
	var req createIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iss, err := h.Issues.CreateIssue(actorID(c), req.RoomID, issue.CreateRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		IsPublic:    req.IsPublic,
		Images:      req.Images,
		GroupTag:    req.GroupTag,
	})
	if err != nil {
		writeIssueError(c, err)
		return
	}
	c.JSON(http.StatusCreated, iss)
}

type editIssueRequest struct {
	Title        *string               `json:"title"`
	Description  *string               `json:"description"`
	Priority     *models.IssuePriority `json:"priority"`
	IsPublic     *bool                 `json:"isPublic"`
	Remarks      *string               `json:"remarks"`
	GroupTag     *string               `json:"groupTag"`
	AssignedToID *string               `json:"assignedToId"`
	Images       *[]string             `json:"images"`
	Status       *models.IssueStatus   `json:"status"`
}

func (h *Handler) EditIssue(c *gin.Context) {
	var req editIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iss, err := h.Issues.EditIssue(actorID(c), issue.EditRequest{
		IssueID:      c.Param("id"),
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		IsPublic:     req.IsPublic,
		Remarks:      req.Remarks,
		GroupTag:     req.GroupTag,
		AssignedToID: req.AssignedToID,
		Images:       req.Images,
		Status:       req.Status,
	})
	if err != nil {
		writeIssueError(c, err)
		return
	}
	c.JSON(http.StatusOK, iss)
}

func (h *Handler) GetIssue(c *gin.Context) {
	iss, err := h.Issues.GetIssue(actorID(c), c.Param("id"))
	if err != nil {
		writeIssueError(c, err)
		return
	}
	c.JSON(http.StatusOK, iss)
}

type listIssuesQuery struct {
	RaisedByID   *string               `form:"raisedById"`
	AssignedToID *string               `form:"assignedToId"`
	Status       *models.IssueStatus   `form:"status"`
	Priority     *models.IssuePriority `form:"priority"`
	GroupTag     *string               `form:"groupTag"`
	Page         int                   `form:"page"`
	Limit        int                   `form:"limit"`
}

func (h *Handler) ListIssues(c *gin.Context) {
	var q listIssuesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issues, total, err := h.Issues.ListIssues(actorID(c), storage.IssueFilter{
		RaisedByID:   q.RaisedByID,
		AssignedToID: q.AssignedToID,
		Status:       q.Status,
		Priority:     q.Priority,
		GroupTag:     q.GroupTag,
		Page:         q.Page,
		Limit:        q.Limit,
	})
	if err != nil {
		writeIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issues": issues,
		"total":  total,
	})
}
