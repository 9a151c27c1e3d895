package issue

import (
	"strings"

	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/lib/pq"
)

// Service handles the business logic for issues: creation, edits, listing
// and the engagement operations (comments, reactions).
type Service struct {
	Storage storage.Storage
}

// NewService creates a new issue service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// CreateRequest carries the raiser-supplied attributes of a new issue.
type CreateRequest struct {
	Title       string
	Description string
	Priority    models.IssuePriority
	IsPublic    bool
	Images      []string
	GroupTag    string
}

// EditRequest is a partial update: nil fields were not submitted. Which of
// the submitted fields are actually persisted depends on the actor's
// relationship to the issue.
type EditRequest struct {
	IssueID      string
	Title        *string
	Description  *string
	Priority     *models.IssuePriority
	IsPublic     *bool
	Remarks      *string
	GroupTag     *string
	AssignedToID *string
	Images       *[]string
	Status       *models.IssueStatus
}

// resolveActor loads the acting user. A missing user is an authorization
// failure, anything else is surfaced as-is.
func (s *Service) resolveActor(actorID string) (*models.User, error) {
	actor, err := s.Storage.GetUserByID(actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, authError("unknown actor")
	}
	return actor, nil
}

// CreateIssue registers a new issue for the raiser. When roomID is empty the
// room is derived from the raiser's current seat.
func (s *Service) CreateIssue(raiserID, roomID string, req CreateRequest) (*models.Issue, error) {
	actor, err := s.resolveActor(raiserID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleStudent {
		return nil, authError("only students can raise issues")
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, invalidInputError("issue title is required")
	}
	if req.Priority == "" {
		req.Priority = models.PriorityLow
	}
	if !req.Priority.IsValid() {
		return nil, invalidInputError("unknown priority: " + string(req.Priority))
	}

	if roomID == "" {
		if actor.SeatID == nil {
			return nil, impossibleTaskError("issue raiser does not have an assigned seat")
		}
		seat, err := s.Storage.GetSeatByID(*actor.SeatID)
		if err != nil {
			return nil, err
		}
		if seat == nil {
			return nil, impossibleTaskError("issue raiser does not have an assigned seat")
		}
		roomID = seat.RoomID
	}

	iss := &models.Issue{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      models.StatusReported,
		IsPublic:    req.IsPublic,
		Images:      pq.StringArray(req.Images),
		GroupTag:    req.GroupTag,
		RaisedByID:  actor.ID,
		RoomID:      roomID,
	}
	if err := s.Storage.CreateIssue(iss); err != nil {
		return nil, err
	}
	return iss, nil
}

// EditIssue validates and applies a partial update. The status transition is
// checked first (global monotonicity, then the per-class rule), after which
// the class field mask decides which remaining fields are persisted. Fields
// outside the mask are dropped, not rejected.
func (s *Service) EditIssue(actorID string, req EditRequest) (*models.Issue, error) {
	actor, err := s.resolveActor(actorID)
	if err != nil {
		return nil, err
	}

	iss, err := s.Storage.GetIssueByID(req.IssueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, notFoundError("issue not found")
	}

	requested := iss.Status
	if req.Status != nil {
		requested = *req.Status
	}
	if !requested.IsValid() {
		return nil, invalidInputError("unknown status: " + string(requested))
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, invalidInputError("unknown priority: " + string(*req.Priority))
	}

	// No role may revert the lifecycle, admins included.
	if requested.Before(iss.Status) {
		return nil, impossibleTaskError("issue status cannot move backwards")
	}

	class, err := s.classify(actor, iss)
	if err != nil {
		return nil, err
	}
	if class == classNone {
		return nil, authError("not allowed to edit this issue")
	}

	pol := editPolicies[class]
	if !pol.canTransition(iss.Status, requested) {
		return nil, authError("status transition not allowed for this role")
	}

	updates := buildUpdates(class, req, iss.Status, requested)
	if len(updates) == 0 {
		return iss, nil
	}

	rows, err := s.Storage.UpdateIssueGuarded(iss.ID, iss.Status, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, conflictError("issue was modified concurrently, retry the edit")
	}

	updated, err := s.Storage.GetIssueByID(iss.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// classify resolves the actor's relationship to the issue. WARDEN only
// qualifies after the delegation check, STAFF only as the assignee; any
// other actor qualifies solely as the raiser of their own issue.
func (s *Service) classify(actor *models.User, iss *models.Issue) (actorClass, error) {
	switch actor.Role {
	case models.RoleAdmin:
		return classAdmin, nil
	case models.RoleWarden:
		ok, err := s.isWardenOf(actor.ID, iss.ID)
		if err != nil {
			return classNone, err
		}
		if ok {
			return classWarden, nil
		}
		return classNone, nil
	case models.RoleStaff:
		if iss.AssignedToID != nil && *iss.AssignedToID == actor.ID {
			return classStaff, nil
		}
		return classNone, nil
	default:
		if actor.ID == iss.RaisedByID {
			return classRaiser, nil
		}
		return classNone, nil
	}
}

// buildUpdates intersects the submitted fields with the class mask. A raiser
// requesting CLOSED persists the status change only, whatever else was
// submitted; once an issue is closed this leaves it immutable to the raiser,
// since CLOSED is the only status they may still request.
func buildUpdates(class actorClass, req EditRequest, current, requested models.IssueStatus) map[string]interface{} {
	updates := map[string]interface{}{}

	raiserClosing := class == classRaiser && requested == models.StatusClosed

	if !raiserClosing {
		mask := editPolicies[class].fields
		if req.Title != nil && mask["title"] {
			updates["title"] = *req.Title
		}
		if req.Description != nil && mask["description"] {
			updates["description"] = *req.Description
		}
		if req.Priority != nil && mask["priority"] {
			updates["priority"] = *req.Priority
		}
		if req.IsPublic != nil && mask["is_public"] {
			updates["is_public"] = *req.IsPublic
		}
		if req.Remarks != nil && mask["remarks"] {
			updates["remarks"] = *req.Remarks
		}
		if req.GroupTag != nil && mask["group_tag"] {
			updates["group_tag"] = *req.GroupTag
		}
		if req.AssignedToID != nil && mask["assigned_to_id"] {
			updates["assigned_to_id"] = *req.AssignedToID
		}
		if req.Images != nil && mask["images"] {
			updates["images"] = pq.StringArray(*req.Images)
		}
	}

	if requested != current {
		updates["status"] = requested
	}
	return updates
}
