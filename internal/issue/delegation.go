package issue

import (
	"errors"

	"hostelhub/backend/internal/storage"
)

// isWardenOf reports whether the actor holds delegated authority over the
// issue, i.e. is one of the wardens assigned to the floor of the raiser's
// *current* seat. If the raiser relocates, authority over earlier issues
// follows them.
func (s *Service) isWardenOf(actorID, issueID string) (bool, error) {
	wardenIDs, err := s.Storage.GetFloorWardens(issueID)
	if errors.Is(err, storage.ErrIssueNotFound) {
		return false, notFoundError("issue not found")
	}
	if errors.Is(err, storage.ErrNoAssignedSeat) {
		// Data-integrity condition, not an authorization outcome.
		return false, impossibleTaskError("issue raiser does not have an assigned seat")
	}
	if err != nil {
		return false, err
	}

	for _, id := range wardenIDs {
		if id == actorID {
			return true, nil
		}
	}
	return false, nil
}
