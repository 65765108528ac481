package bug

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
	"github.com/heartmarshall/bugtrackr-backend/pkg/ctxutil"
)

func newTestService(bugs *bugRepoMock, comments *commentRepoMock, projects *projectRepoMock, users *userRepoMock, activity *activityRepoMock) *Service {
	if bugs == nil {
		bugs = &bugRepoMock{}
	}
	if comments == nil {
		comments = &commentRepoMock{}
	}
	if projects == nil {
		projects = &projectRepoMock{}
	}
	if users == nil {
		users = &userRepoMock{}
	}
	if activity == nil {
		activity = &activityRepoMock{}
	}
	return NewService(slog.New(slog.DiscardHandler), bugs, comments, projects, users, activity)
}

func actorCtx(userID string, role domain.UserRole) context.Context {
	return ctxutil.WithActor(context.Background(), ctxutil.Actor{UserID: userID, Role: role.String()})
}

func existingBug(status domain.BugStatus, validated bool) *domain.Bug {
	return &domain.Bug{
		ID:        "bug-1",
		Title:     "login fails",
		ProjectID: "proj-1",
		Status:    status,
		Priority:  domain.BugPriorityMedium,
		Severity:  domain.BugSeverityMajor,
		Validated: validated,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func okActivity() *activityRepoMock {
	return &activityRepoMock{
		CreateFunc: func(_ context.Context, e domain.ActivityEntry) (domain.ActivityEntry, error) {
			e.ID = "act-1"
			return e, nil
		},
	}
}

// --- Create -----------------------------------------------------------

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	projects := &projectRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (domain.Project, error) {
			return domain.Project{ID: id, Name: "Payments"}, nil
		},
	}
	bugs := &bugRepoMock{
		CreateFunc: func(_ context.Context, b domain.Bug) (domain.Bug, error) {
			b.ID = "bug-1"
			return b, nil
		},
	}

	svc := newTestService(bugs, nil, projects, nil, nil)
	got, err := svc.Create(actorCtx("user-1", domain.UserRoleDeveloper), CreateInput{
		Title:     "  login fails  ",
		ProjectID: "proj-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "bug-1", got.ID)
	assert.Equal(t, "login fails", got.Title)
	assert.Equal(t, "user-1", got.ReportedBy)
	assert.Equal(t, domain.BugStatusOpen, got.Status)
	assert.Equal(t, domain.BugPriorityMedium, got.Priority)
	assert.Equal(t, domain.BugSeverityMinor, got.Severity)
	assert.False(t, got.Validated)
	require.Len(t, bugs.CreateCalls(), 1)
}

func TestCreate_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil, nil)
	_, err := svc.Create(context.Background(), CreateInput{Title: "x", ProjectID: "p"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreate_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil, nil)
	_, err := svc.Create(actorCtx("user-1", domain.UserRoleDeveloper), CreateInput{})
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2) // title and projectId
}

func TestCreate_ProjectMissing(t *testing.T) {
	t.Parallel()

	projects := &projectRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (domain.Project, error) {
			return domain.Project{}, domain.ErrNotFound
		},
	}

	svc := newTestService(nil, nil, projects, nil, nil)
	_, err := svc.Create(actorCtx("user-1", domain.UserRoleDeveloper), CreateInput{
		Title:     "login fails",
		ProjectID: "ghost",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Get / List -------------------------------------------------------

func TestGet_WithComments(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return existingBug(domain.BugStatusOpen, false), nil
		},
	}
	comments := &commentRepoMock{
		ListByBugFunc: func(_ context.Context, bugID string) ([]domain.Comment, error) {
			return []domain.Comment{{ID: "c-1", BugID: bugID}}, nil
		},
	}

	svc := newTestService(bugs, comments, nil, nil, nil)
	got, err := svc.Get(context.Background(), "bug-1")
	require.NoError(t, err)

	assert.Equal(t, "bug-1", got.Bug.ID)
	require.Len(t, got.Comments, 1)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(bugs, nil, nil, nil, nil)
	_, err := svc.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_PassesFilter(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		ListFunc: func(_ context.Context, filter domain.BugFilter) ([]domain.Bug, error) {
			return []domain.Bug{*existingBug(domain.BugStatusOpen, false)}, nil
		},
	}

	svc := newTestService(bugs, nil, nil, nil, nil)
	got, err := svc.List(context.Background(), ListInput{ProjectID: "proj-1", Status: domain.BugStatusOpen})
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.Len(t, bugs.ListCalls(), 1)
	assert.Equal(t, domain.BugFilter{ProjectID: "proj-1", Status: domain.BugStatusOpen}, bugs.ListCalls()[0])
}

func TestList_UnknownStatus(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil, nil)
	_, err := svc.List(context.Background(), ListInput{Status: "Bogus"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

// --- UpdateStatus -----------------------------------------------------

func TestUpdateStatus_Allowed(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return existingBug(domain.BugStatusOpen, false), nil
		},
		UpdateStatusFunc: func(_ context.Context, id string, status domain.BugStatus, updatedAt time.Time) (domain.Bug, error) {
			b := *existingBug(domain.BugStatusOpen, false)
			b.Status = status
			b.UpdatedAt = updatedAt
			return b, nil
		},
	}
	activity := okActivity()

	svc := newTestService(bugs, nil, nil, nil, activity)
	got, err := svc.UpdateStatus(actorCtx("user-1", domain.UserRoleDeveloper), UpdateStatusInput{
		BugID:  "bug-1",
		Status: domain.BugStatusInProgress,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BugStatusInProgress, got.Status)
	require.Len(t, activity.CreateCalls(), 1)
	entry := activity.CreateCalls()[0]
	assert.Equal(t, domain.ActivityActionStatusChanged, entry.Action)
	assert.Equal(t, "user-1", entry.PerformedBy)
	assert.True(t, entry.Timestamp.Equal(got.UpdatedAt))
}

func TestUpdateStatus_DeveloperCannotClose(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return existingBug(domain.BugStatusResolved, true), nil
		},
	}

	svc := newTestService(bugs, nil, nil, nil, nil)
	_, err := svc.UpdateStatus(actorCtx("user-1", domain.UserRoleDeveloper), UpdateStatusInput{
		BugID:  "bug-1",
		Status: domain.BugStatusClosed,
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, bugs.UpdateStatusCalls())
}

func TestUpdateStatus_CloseUnvalidated(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return existingBug(domain.BugStatusResolved, false), nil
		},
	}

	svc := newTestService(bugs, nil, nil, nil, nil)
	_, err := svc.UpdateStatus(actorCtx("user-1", domain.UserRoleTester), UpdateStatusInput{
		BugID:  "bug-1",
		Status: domain.BugStatusClosed,
	})
	// Unmet precondition, not a role problem.
	require.ErrorIs(t, err, domain.ErrValidation)
	require.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_ClosedBugOnlyAdmin(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return existingBug(domain.BugStatusClosed, true), nil
		},
		UpdateStatusFunc: func(_ context.Context, id string, status domain.BugStatus, updatedAt time.Time) (domain.Bug, error) {
			b := *existingBug(domain.BugStatusClosed, true)
			b.Status = status
			b.UpdatedAt = updatedAt
			return b, nil
		},
	}

	svc := newTestService(bugs, nil, nil, nil, nil)
	_, err := svc.UpdateStatus(actorCtx("user-1", domain.UserRoleTester), UpdateStatusInput{
		BugID:  "bug-1",
		Status: domain.BugStatusOpen,
	})
	require.ErrorIs(t, err, domain.ErrForbidden)

	svc = newTestService(bugs, nil, nil, nil, okActivity())
	got, err := svc.UpdateStatus(actorCtx("admin-1", domain.UserRoleAdmin), UpdateStatusInput{
		BugID:  "bug-1",
		Status: domain.BugStatusOpen,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BugStatusOpen, got.Status)
}

func TestUpdateStatus_ActivityFailureDoesNotFailUpdate(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return existingBug(domain.BugStatusOpen, false), nil
		},
		UpdateStatusFunc: func(_ context.Context, id string, status domain.BugStatus, updatedAt time.Time) (domain.Bug, error) {
			b := *existingBug(domain.BugStatusOpen, false)
			b.Status = status
			return b, nil
		},
	}
	activity := &activityRepoMock{
		CreateFunc: func(_ context.Context, e domain.ActivityEntry) (domain.ActivityEntry, error) {
			return domain.ActivityEntry{}, &domain.RemoteError{Op: "collection.create", Status: 500}
		},
	}

	svc := newTestService(bugs, nil, nil, nil, activity)
	got, err := svc.UpdateStatus(actorCtx("user-1", domain.UserRoleDeveloper), UpdateStatusInput{
		BugID:  "bug-1",
		Status: domain.BugStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BugStatusInProgress, got.Status)
}

// --- Assign -----------------------------------------------------------

func TestAssign_Success(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (domain.User, error) {
			return domain.User{ID: id, Role: domain.UserRoleDeveloper}, nil
		},
	}
	bugs := &bugRepoMock{
		UpdateAssignmentFunc: func(_ context.Context, id, assignedTo string, updatedAt time.Time) (domain.Bug, error) {
			b := *existingBug(domain.BugStatusOpen, false)
			b.AssignedTo = assignedTo
			b.UpdatedAt = updatedAt
			return b, nil
		},
	}
	activity := okActivity()

	svc := newTestService(bugs, nil, nil, users, activity)
	got, err := svc.Assign(actorCtx("admin-1", domain.UserRoleAdmin), AssignInput{
		BugID:      "bug-1",
		AssigneeID: "dev-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "dev-1", got.AssignedTo)
	require.Len(t, activity.CreateCalls(), 1)
	assert.Equal(t, domain.ActivityActionBugAssigned, activity.CreateCalls()[0].Action)
}

func TestAssign_UnknownAssignee(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (domain.User, error) {
			return domain.User{}, domain.ErrNotFound
		},
	}

	svc := newTestService(nil, nil, nil, users, nil)
	_, err := svc.Assign(actorCtx("admin-1", domain.UserRoleAdmin), AssignInput{
		BugID:      "bug-1",
		AssigneeID: "ghost",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Validate ---------------------------------------------------------

func TestValidate_TesterAllowed(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return existingBug(domain.BugStatusResolved, false), nil
		},
		UpdateValidationFunc: func(_ context.Context, id string, validated bool, updatedAt time.Time) (domain.Bug, error) {
			b := *existingBug(domain.BugStatusResolved, false)
			b.Validated = validated
			b.UpdatedAt = updatedAt
			return b, nil
		},
	}
	activity := okActivity()

	svc := newTestService(bugs, nil, nil, nil, activity)
	got, err := svc.Validate(actorCtx("tester-1", domain.UserRoleTester), ValidateInput{BugID: "bug-1"})
	require.NoError(t, err)

	assert.True(t, got.Validated)
	require.Len(t, activity.CreateCalls(), 1)
	assert.Equal(t, domain.ActivityActionBugValidated, activity.CreateCalls()[0].Action)
}

func TestValidate_DeveloperForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil, nil)
	_, err := svc.Validate(actorCtx("dev-1", domain.UserRoleDeveloper), ValidateInput{BugID: "bug-1"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestValidate_BugMissing(t *testing.T) {
	t.Parallel()

	bugs := &bugRepoMock{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Bug, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(bugs, nil, nil, nil, nil)
	_, err := svc.Validate(actorCtx("tester-1", domain.UserRoleTester), ValidateInput{BugID: "ghost"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
