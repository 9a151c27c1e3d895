package issue_test

import (
	"testing"

	"hostelhub/backend/internal/issue"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"
	"hostelhub/backend/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// listAs runs a listing as the given actor and returns the filter the
// storage layer actually received after scope narrowing.
func listAs(t *testing.T, actor *models.User, f storage.IssueFilter) storage.IssueFilter {
	t.Helper()

	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	var captured storage.IssueFilter
	storageMock.On("GetUserByID", actor.ID).Return(actor, nil)
	storageMock.On("ListIssues", mock.AnythingOfType("storage.IssueFilter")).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(storage.IssueFilter)
		}).
		Return([]models.Issue{}, int64(0), nil)

	_, _, err := svc.ListIssues(actor.ID, f)
	assert.NoError(t, err)
	return captured
}

// TestListIssues_StudentScopeCannotBeWidened: a student always lists their
// own issues, whatever raisedBy filter the caller supplies.
func TestListIssues_StudentScopeCannotBeWidened(t *testing.T) {
	student := newActor("stu1", models.RoleStudent)

	captured := listAs(t, student, storage.IssueFilter{
		RaisedByID: strPtr("someone-else"),
	})

	if assert.NotNil(t, captured.RaisedByID) {
		assert.Equal(t, "stu1", *captured.RaisedByID)
	}
	assert.Nil(t, captured.WardenID)
}

// TestListIssues_StaffScopeForced: staff listings are pinned to their own
// assignments.
func TestListIssues_StaffScopeForced(t *testing.T) {
	staff := newActor("staff1", models.RoleStaff)

	captured := listAs(t, staff, storage.IssueFilter{
		AssignedToID: strPtr("someone-else"),
	})

	if assert.NotNil(t, captured.AssignedToID) {
		assert.Equal(t, "staff1", *captured.AssignedToID)
	}
}

// TestListIssues_WardenScopeJoinsDelegation: warden listings carry the
// delegation join keyed to the warden themselves.
func TestListIssues_WardenScopeJoinsDelegation(t *testing.T) {
	warden := newActor("w1", models.RoleWarden)

	captured := listAs(t, warden, storage.IssueFilter{
		WardenID: strPtr("some-other-warden"),
	})

	if assert.NotNil(t, captured.WardenID) {
		assert.Equal(t, "w1", *captured.WardenID)
	}
}

// TestListIssues_AdminUnrestricted: admins keep whatever filter they asked
// for, and never get the delegation join.
func TestListIssues_AdminUnrestricted(t *testing.T) {
	admin := newActor("a1", models.RoleAdmin)

	captured := listAs(t, admin, storage.IssueFilter{
		RaisedByID: strPtr("u42"),
		WardenID:   strPtr("w1"),
	})

	if assert.NotNil(t, captured.RaisedByID) {
		assert.Equal(t, "u42", *captured.RaisedByID)
	}
	assert.Nil(t, captured.WardenID)
}

// TestListIssues_OtherFiltersSurvive: narrowing only touches the identity
// dimension; status/priority filters pass through.
func TestListIssues_OtherFiltersSurvive(t *testing.T) {
	student := newActor("stu1", models.RoleStudent)
	status := models.StatusResolved
	priority := models.PriorityHigh

	captured := listAs(t, student, storage.IssueFilter{
		Status:   &status,
		Priority: &priority,
		GroupTag: strPtr("plumbing"),
	})

	assert.Equal(t, &status, captured.Status)
	assert.Equal(t, &priority, captured.Priority)
	if assert.NotNil(t, captured.GroupTag) {
		assert.Equal(t, "plumbing", *captured.GroupTag)
	}
}

// TestGetIssue_Gates covers the single-issue visibility rules.
func TestGetIssue_Gates(t *testing.T) {
	tests := []struct {
		name     string
		actor    *models.User
		isPublic bool
		raisedBy string
		wardens  []string
		want     issue.Kind
	}{
		{"public visible to anyone", newActor("x", models.RoleStudent), true, "u1", nil, ""},
		{"admin sees private", newActor("a1", models.RoleAdmin), false, "u1", nil, ""},
		{"raiser sees own private", newActor("u1", models.RoleStudent), false, "u1", nil, ""},
		{"delegated warden sees private", newActor("w1", models.RoleWarden), false, "u1", []string{"w1"}, ""},
		{"stranger denied", newActor("x", models.RoleStudent), false, "u1", []string{"w1"}, issue.KindAuth},
		{"assignee denied on private", newActor("s1", models.RoleStaff), false, "u1", []string{"w1"}, issue.KindAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			storageMock := new(storagetest.MockStorage)
			svc := issue.NewService(storageMock)

			iss := newIssue("i1", tt.raisedBy, models.StatusReported)
			iss.IsPublic = tt.isPublic
			iss.AssignedToID = strPtr("s1")

			storageMock.On("GetUserByID", tt.actor.ID).Return(tt.actor, nil)
			storageMock.On("GetIssueByID", "i1").Return(iss, nil)
			if tt.wardens != nil {
				storageMock.On("GetFloorWardens", "i1").Return(tt.wardens, nil)
			}

			// Act
			got, err := svc.GetIssue(tt.actor.ID, "i1")

			// Assert
			if tt.want == "" {
				assert.NoError(t, err)
				assert.Equal(t, "i1", got.ID)
			} else {
				assert.Equal(t, tt.want, issue.KindOf(err))
			}
		})
	}
}

// TestGetIssue_Missing is NotFound.
func TestGetIssue_Missing(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "u1").Return(newActor("u1", models.RoleStudent), nil)
	storageMock.On("GetIssueByID", "gone").Return(nil, nil)

	_, err := svc.GetIssue("u1", "gone")

	assert.Equal(t, issue.KindNotFound, issue.KindOf(err))
}
