package bug

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

var _ bugRepo = &bugRepoMock{}

type bugRepoMock struct {
	CreateFunc           func(ctx context.Context, b domain.Bug) (domain.Bug, error)
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Bug, error)
	ListFunc             func(ctx context.Context, filter domain.BugFilter) ([]domain.Bug, error)
	UpdateStatusFunc     func(ctx context.Context, id string, status domain.BugStatus, updatedAt time.Time) (domain.Bug, error)
	UpdateAssignmentFunc func(ctx context.Context, id, assignedTo string, updatedAt time.Time) (domain.Bug, error)
	UpdateValidationFunc func(ctx context.Context, id string, validated bool, updatedAt time.Time) (domain.Bug, error)

	calls struct {
		Create           []domain.Bug
		GetByID          []string
		List             []domain.BugFilter
		UpdateStatus     []string
		UpdateAssignment []string
		UpdateValidation []string
	}
	lock sync.Mutex
}

func (mock *bugRepoMock) Create(ctx context.Context, b domain.Bug) (domain.Bug, error) {
	if mock.CreateFunc == nil {
		panic("bugRepoMock.CreateFunc: method is nil but bugRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, b)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bugRepoMock) CreateCalls() []domain.Bug {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.Create
}

func (mock *bugRepoMock) GetByID(ctx context.Context, id string) (*domain.Bug, error) {
	if mock.GetByIDFunc == nil {
		panic("bugRepoMock.GetByIDFunc: method is nil but bugRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, id)
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bugRepoMock) GetByIDCalls() []string {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.GetByID
}

func (mock *bugRepoMock) List(ctx context.Context, filter domain.BugFilter) ([]domain.Bug, error) {
	if mock.ListFunc == nil {
		panic("bugRepoMock.ListFunc: method is nil but bugRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, filter)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *bugRepoMock) ListCalls() []domain.BugFilter {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.List
}

func (mock *bugRepoMock) UpdateStatus(ctx context.Context, id string, status domain.BugStatus, updatedAt time.Time) (domain.Bug, error) {
	if mock.UpdateStatusFunc == nil {
		panic("bugRepoMock.UpdateStatusFunc: method is nil but bugRepo.UpdateStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, id)
	mock.lock.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, updatedAt)
}

func (mock *bugRepoMock) UpdateStatusCalls() []string {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.UpdateStatus
}

func (mock *bugRepoMock) UpdateAssignment(ctx context.Context, id, assignedTo string, updatedAt time.Time) (domain.Bug, error) {
	if mock.UpdateAssignmentFunc == nil {
		panic("bugRepoMock.UpdateAssignmentFunc: method is nil but bugRepo.UpdateAssignment was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateAssignment = append(mock.calls.UpdateAssignment, id)
	mock.lock.Unlock()
	return mock.UpdateAssignmentFunc(ctx, id, assignedTo, updatedAt)
}

func (mock *bugRepoMock) UpdateAssignmentCalls() []string {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.UpdateAssignment
}

func (mock *bugRepoMock) UpdateValidation(ctx context.Context, id string, validated bool, updatedAt time.Time) (domain.Bug, error) {
	if mock.UpdateValidationFunc == nil {
		panic("bugRepoMock.UpdateValidationFunc: method is nil but bugRepo.UpdateValidation was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateValidation = append(mock.calls.UpdateValidation, id)
	mock.lock.Unlock()
	return mock.UpdateValidationFunc(ctx, id, validated, updatedAt)
}

func (mock *bugRepoMock) UpdateValidationCalls() []string {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.UpdateValidation
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListByBugFunc func(ctx context.Context, bugID string) ([]domain.Comment, error)
}

func (mock *commentRepoMock) ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error) {
	if mock.ListByBugFunc == nil {
		panic("commentRepoMock.ListByBugFunc: method is nil but commentRepo.ListByBug was just called")
	}
	return mock.ListByBugFunc(ctx, bugID)
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (domain.Project, error)
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id string) (domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id string) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc func(ctx context.Context, e domain.ActivityEntry) (domain.ActivityEntry, error)

	calls struct {
		Create []domain.ActivityEntry
	}
	lock sync.Mutex
}

func (mock *activityRepoMock) Create(ctx context.Context, e domain.ActivityEntry) (domain.ActivityEntry, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, e)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *activityRepoMock) CreateCalls() []domain.ActivityEntry {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.Create
}
