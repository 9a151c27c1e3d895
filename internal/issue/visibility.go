package issue

import (
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"
)

// GetIssue returns a single issue if the actor may see it: public issues and
// admins are unrestricted, otherwise only the raiser and the delegated
// wardens qualify.
func (s *Service) GetIssue(actorID, issueID string) (*models.Issue, error) {
	actor, err := s.resolveActor(actorID)
	if err != nil {
		return nil, err
	}

	iss, err := s.Storage.GetIssueByID(issueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, notFoundError("issue not found")
	}

	if iss.IsPublic || actor.Role == models.RoleAdmin || actor.ID == iss.RaisedByID {
		return iss, nil
	}

	ok, err := s.isWardenOf(actor.ID, iss.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, authError("not allowed to view this issue")
	}
	return iss, nil
}

// ListIssues returns a page of issues the actor may see. The actor's role
// forcibly narrows the filter; caller-supplied values on the narrowed
// dimension are overwritten, never widened.
func (s *Service) ListIssues(actorID string, f storage.IssueFilter) ([]models.Issue, int64, error) {
	actor, err := s.resolveActor(actorID)
	if err != nil {
		return nil, 0, err
	}

	if err := applyListScope(actor, &f); err != nil {
		return nil, 0, err
	}
	return s.Storage.ListIssues(f)
}

// applyListScope pins the filter dimension owned by the actor's role.
func applyListScope(actor *models.User, f *storage.IssueFilter) error {
	switch actor.Role {
	case models.RoleAdmin:
		f.WardenID = nil
	case models.RoleWarden:
		f.WardenID = &actor.ID
	case models.RoleStaff:
		f.AssignedToID = &actor.ID
		f.WardenID = nil
	case models.RoleStudent:
		f.RaisedByID = &actor.ID
		f.WardenID = nil
	default:
		return authError("unknown role")
	}
	return nil
}
