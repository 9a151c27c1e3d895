package issue_test

import (
	"testing"

	"hostelhub/backend/internal/issue"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func statusPtr(s models.IssueStatus) *models.IssueStatus { return &s }

func newActor(id string, role models.Role) *models.User {
	return &models.User{ID: id, Name: "test-" + id, Email: id + "@hostel.test", Role: role}
}

func newIssue(id, raisedBy string, status models.IssueStatus) *models.Issue {
	return &models.Issue{
		ID:         id,
		Title:      "Leaking tap",
		Status:     status,
		RaisedByID: raisedBy,
		RoomID:     "room-1",
	}
}

// TestCreateIssue_StartsReported verifies a new issue lands in REPORTED with
// the submitted priority.
func TestCreateIssue_StartsReported(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	raiser := newActor("u1", models.RoleStudent)
	storageMock.On("GetUserByID", "u1").Return(raiser, nil)
	storageMock.On("CreateIssue", mock.AnythingOfType("*models.Issue")).Return(nil)

	// Act
	iss, err := svc.CreateIssue("u1", "room-1", issue.CreateRequest{
		Title:    "Leaking tap",
		Priority: models.PriorityMedium,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.StatusReported, iss.Status)
	assert.Equal(t, 0, iss.Status.Rank())
	assert.Equal(t, models.PriorityMedium, iss.Priority)
	assert.Equal(t, "u1", iss.RaisedByID)
	assert.Equal(t, "room-1", iss.RoomID)
	storageMock.AssertExpectations(t)
}

// TestCreateIssue_DerivesRoomFromSeat verifies the room falls back to the
// raiser's current seat when not supplied.
func TestCreateIssue_DerivesRoomFromSeat(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	raiser := newActor("u1", models.RoleStudent)
	raiser.SeatID = strPtr("seat-7")
	storageMock.On("GetUserByID", "u1").Return(raiser, nil)
	storageMock.On("GetSeatByID", "seat-7").Return(&models.Seat{ID: "seat-7", RoomID: "room-9"}, nil)
	storageMock.On("CreateIssue", mock.AnythingOfType("*models.Issue")).Return(nil)

	// Act
	iss, err := svc.CreateIssue("u1", "", issue.CreateRequest{Title: "No light"})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "room-9", iss.RoomID)
	assert.Equal(t, models.PriorityLow, iss.Priority, "priority defaults to LOW")
}

// TestCreateIssue_SeatlessRaiser verifies a raiser without a seat and
// without an explicit room is a precondition failure, not a denial.
func TestCreateIssue_SeatlessRaiser(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "u1").Return(newActor("u1", models.RoleStudent), nil)

	_, err := svc.CreateIssue("u1", "", issue.CreateRequest{Title: "No light"})

	assert.Error(t, err)
	assert.Equal(t, issue.KindImpossibleTask, issue.KindOf(err))
}

// TestCreateIssue_NonStudentDenied verifies only student accounts raise
// issues.
func TestCreateIssue_NonStudentDenied(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "w1").Return(newActor("w1", models.RoleWarden), nil)

	_, err := svc.CreateIssue("w1", "room-1", issue.CreateRequest{Title: "X"})

	assert.Equal(t, issue.KindAuth, issue.KindOf(err))
	storageMock.AssertNotCalled(t, "CreateIssue", mock.Anything)
}

// TestEditIssue_AdminForward moves REPORTED -> IN_PROGRESS as an admin.
func TestEditIssue_AdminForward(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	admin := newActor("a1", models.RoleAdmin)
	before := newIssue("i1", "u1", models.StatusReported)
	after := newIssue("i1", "u1", models.StatusInProgress)

	storageMock.On("GetUserByID", "a1").Return(admin, nil)
	storageMock.On("GetIssueByID", "i1").Return(before, nil).Once()
	storageMock.On("UpdateIssueGuarded", "i1", models.StatusReported, mock.Anything).
		Return(int64(1), nil)
	storageMock.On("GetIssueByID", "i1").Return(after, nil).Once()

	// Act
	updated, err := svc.EditIssue("a1", issue.EditRequest{
		IssueID: "i1",
		Status:  statusPtr(models.StatusInProgress),
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	storageMock.AssertExpectations(t)
}

// TestEditIssue_AdminCannotRevert verifies the global rule: nobody moves the
// lifecycle backwards, admins included.
func TestEditIssue_AdminCannotRevert(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "a1").Return(newActor("a1", models.RoleAdmin), nil)
	storageMock.On("GetIssueByID", "i1").Return(newIssue("i1", "u1", models.StatusInProgress), nil)

	_, err := svc.EditIssue("a1", issue.EditRequest{
		IssueID: "i1",
		Status:  statusPtr(models.StatusReported),
	})

	assert.Equal(t, issue.KindImpossibleTask, issue.KindOf(err))
	storageMock.AssertNotCalled(t, "UpdateIssueGuarded", mock.Anything, mock.Anything, mock.Anything)
}

// TestEditIssue_WardenCannotClose: a delegated warden may move an issue
// forward but closing is reserved for the raiser and admins.
func TestEditIssue_WardenCannotClose(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "w1").Return(newActor("w1", models.RoleWarden), nil)
	storageMock.On("GetIssueByID", "i1").Return(newIssue("i1", "u1", models.StatusInProgress), nil)
	storageMock.On("GetFloorWardens", "i1").Return([]string{"w1", "w2"}, nil)

	// Act
	_, err := svc.EditIssue("w1", issue.EditRequest{
		IssueID: "i1",
		Status:  statusPtr(models.StatusClosed),
	})

	// Assert
	assert.Equal(t, issue.KindAuth, issue.KindOf(err))
}

// TestEditIssue_RaiserKeepsMaskedFields: the raiser edits description while
// the status stays put; only the raiser-editable fields reach the store.
func TestEditIssue_RaiserKeepsMaskedFields(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	before := newIssue("i1", "u1", models.StatusInProgress)
	after := newIssue("i1", "u1", models.StatusInProgress)
	after.Description = "new text"

	var captured map[string]interface{}
	storageMock.On("GetUserByID", "u1").Return(newActor("u1", models.RoleStudent), nil)
	storageMock.On("GetIssueByID", "i1").Return(before, nil).Once()
	storageMock.On("UpdateIssueGuarded", "i1", models.StatusInProgress, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]interface{})
		}).
		Return(int64(1), nil)
	storageMock.On("GetIssueByID", "i1").Return(after, nil).Once()

	// Act
	_, err := svc.EditIssue("u1", issue.EditRequest{
		IssueID:     "i1",
		Description: strPtr("new text"),
		Title:       strPtr("hijacked title"),
		GroupTag:    strPtr("plumbing"),
		Status:      statusPtr(models.StatusInProgress),
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "new text", captured["description"])
	assert.NotContains(t, captured, "title", "title is not raiser-editable")
	assert.NotContains(t, captured, "group_tag", "groupTag is not raiser-editable")
	assert.NotContains(t, captured, "status", "unchanged status is not rewritten")
}

// TestEditIssue_RaiserCloseDropsOtherFields: closing persists the status
// change only, whatever else was submitted.
func TestEditIssue_RaiserCloseDropsOtherFields(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	before := newIssue("i1", "u1", models.StatusResolved)
	after := newIssue("i1", "u1", models.StatusClosed)

	var captured map[string]interface{}
	storageMock.On("GetUserByID", "u1").Return(newActor("u1", models.RoleStudent), nil)
	storageMock.On("GetIssueByID", "i1").Return(before, nil).Once()
	storageMock.On("UpdateIssueGuarded", "i1", models.StatusResolved, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]interface{})
		}).
		Return(int64(1), nil)
	storageMock.On("GetIssueByID", "i1").Return(after, nil).Once()

	// Act
	_, err := svc.EditIssue("u1", issue.EditRequest{
		IssueID:     "i1",
		Description: strPtr("ignore me"),
		Remarks:     strPtr("ignore me too"),
		Status:      statusPtr(models.StatusClosed),
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": models.StatusClosed}, captured)
}

// TestEditIssue_RaiserClosedIssueImmutable: once closed, an issue accepts no
// further raiser edits, even when CLOSED is re-requested alongside other
// fields.
func TestEditIssue_RaiserClosedIssueImmutable(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	closed := newIssue("i1", "u1", models.StatusClosed)
	storageMock.On("GetUserByID", "u1").Return(newActor("u1", models.RoleStudent), nil)
	storageMock.On("GetIssueByID", "i1").Return(closed, nil)

	// Act
	got, err := svc.EditIssue("u1", issue.EditRequest{
		IssueID:     "i1",
		Description: strPtr("edited after close"),
		Status:      statusPtr(models.StatusClosed),
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.StatusClosed, got.Status)
	storageMock.AssertNotCalled(t, "UpdateIssueGuarded", mock.Anything, mock.Anything, mock.Anything)
}

// TestEditIssue_ConcurrentEditConflicts: a guarded update that matches zero
// rows means another edit won the race; nothing may be partially applied.
func TestEditIssue_ConcurrentEditConflicts(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "a1").Return(newActor("a1", models.RoleAdmin), nil)
	storageMock.On("GetIssueByID", "i1").Return(newIssue("i1", "u1", models.StatusReported), nil)
	storageMock.On("UpdateIssueGuarded", "i1", models.StatusReported, mock.Anything).
		Return(int64(0), nil)

	_, err := svc.EditIssue("a1", issue.EditRequest{
		IssueID: "i1",
		Status:  statusPtr(models.StatusAssigned),
	})

	assert.Equal(t, issue.KindConflict, issue.KindOf(err))
}

// TestEditIssue_NoOpSkipsWrite: an edit that changes nothing does not touch
// the store.
func TestEditIssue_NoOpSkipsWrite(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "a1").Return(newActor("a1", models.RoleAdmin), nil)
	storageMock.On("GetIssueByID", "i1").Return(newIssue("i1", "u1", models.StatusReported), nil)

	iss, err := svc.EditIssue("a1", issue.EditRequest{IssueID: "i1"})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusReported, iss.Status)
	storageMock.AssertNotCalled(t, "UpdateIssueGuarded", mock.Anything, mock.Anything, mock.Anything)
}

// TestEditIssue_MissingIssue is a NotFound outcome.
func TestEditIssue_MissingIssue(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "a1").Return(newActor("a1", models.RoleAdmin), nil)
	storageMock.On("GetIssueByID", "nope").Return(nil, nil)

	_, err := svc.EditIssue("a1", issue.EditRequest{IssueID: "nope"})

	assert.Equal(t, issue.KindNotFound, issue.KindOf(err))
}

// TestEditIssue_UnknownStatus is an InvalidInput outcome.
func TestEditIssue_UnknownStatus(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "a1").Return(newActor("a1", models.RoleAdmin), nil)
	storageMock.On("GetIssueByID", "i1").Return(newIssue("i1", "u1", models.StatusReported), nil)

	_, err := svc.EditIssue("a1", issue.EditRequest{
		IssueID: "i1",
		Status:  statusPtr(models.IssueStatus("ARCHIVED")),
	})

	assert.Equal(t, issue.KindInvalidInput, issue.KindOf(err))
}

// TestEditIssue_UnknownActor: the identity collaborator not knowing the
// actor is fatal to the request.
func TestEditIssue_UnknownActor(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := issue.NewService(storageMock)

	storageMock.On("GetUserByID", "ghost").Return(nil, nil)

	_, err := svc.EditIssue("ghost", issue.EditRequest{IssueID: "i1"})

	assert.Equal(t, issue.KindAuth, issue.KindOf(err))
}
