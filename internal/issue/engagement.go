package issue

import (
	"strings"

	"hostelhub/backend/internal/models"
)

// canEngageIssue is the shared comment/reaction gate for issue targets:
// admins, the raiser, the assignee and the delegated wardens may always
// engage, everyone else only when the issue is public.
func (s *Service) canEngageIssue(actor *models.User, iss *models.Issue) (bool, error) {
	if actor.Role == models.RoleAdmin || iss.IsPublic {
		return true, nil
	}
	if actor.ID == iss.RaisedByID {
		return true, nil
	}
	if iss.AssignedToID != nil && *iss.AssignedToID == actor.ID {
		return true, nil
	}
	return s.isWardenOf(actor.ID, iss.ID)
}

// AddComment attaches a comment to an issue, either directly or as a
// threaded reply to an existing comment. Replies resolve to the parent's
// owning issue and pass the same gate.
func (s *Service) AddComment(actorID, targetID string, targetType models.TargetType, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, invalidInputError("comment content is required")
	}

	actor, err := s.resolveActor(actorID)
	if err != nil {
		return nil, err
	}

	var iss *models.Issue
	var parentID *string

	switch targetType {
	case models.TargetIssue:
		iss, err = s.Storage.GetIssueByID(targetID)
		if err != nil {
			return nil, err
		}
		if iss == nil {
			return nil, notFoundError("issue not found")
		}
	case models.TargetComment:
		parent, err := s.Storage.GetCommentByID(targetID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, notFoundError("comment not found")
		}
		iss, err = s.Storage.GetIssueByID(parent.IssueID)
		if err != nil {
			return nil, err
		}
		if iss == nil {
			return nil, notFoundError("issue not found")
		}
		parentID = &parent.ID
	default:
		return nil, invalidInputError("comments cannot target " + string(targetType))
	}

	ok, err := s.canEngageIssue(actor, iss)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, authError("not allowed to comment on this issue")
	}

	comment := &models.Comment{
		Content:  content,
		AuthorID: actor.ID,
		IssueID:  iss.ID,
		ParentID: parentID,
	}
	if err := s.Storage.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// React records the actor's reaction on a target. Only issue targets run the
// full engagement gate; comment and announcement targets are checked for
// existence only. Reacting again replaces the stored type.
func (s *Service) React(actorID, targetID string, targetType models.TargetType, reactionType string) (*models.Reaction, error) {
	if strings.TrimSpace(reactionType) == "" {
		return nil, invalidInputError("reaction type is required")
	}
	if !targetType.IsValid() {
		return nil, invalidInputError("unknown target type: " + string(targetType))
	}

	actor, err := s.resolveActor(actorID)
	if err != nil {
		return nil, err
	}

	switch targetType {
	case models.TargetIssue:
		iss, err := s.Storage.GetIssueByID(targetID)
		if err != nil {
			return nil, err
		}
		if iss == nil {
			return nil, notFoundError("issue not found")
		}
		ok, err := s.canEngageIssue(actor, iss)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, authError("not allowed to react to this issue")
		}
	case models.TargetComment:
		comment, err := s.Storage.GetCommentByID(targetID)
		if err != nil {
			return nil, err
		}
		if comment == nil {
			return nil, notFoundError("comment not found")
		}
	case models.TargetAnnouncement:
		announcement, err := s.Storage.GetAnnouncementByID(targetID)
		if err != nil {
			return nil, err
		}
		if announcement == nil {
			return nil, notFoundError("announcement not found")
		}
	}

	reaction := &models.Reaction{
		TargetID:   targetID,
		UserID:     actor.ID,
		TargetType: targetType,
		Type:       reactionType,
	}
	if err := s.Storage.UpsertReaction(reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}
