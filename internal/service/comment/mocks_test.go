package comment

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc    func(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListByBugFunc func(ctx context.Context, bugID string) ([]domain.Comment, error)
	DeleteFunc    func(ctx context.Context, id string) error

	calls struct {
		Create []domain.Comment
		Delete []string
	}
	lock sync.Mutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, c)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []domain.Comment {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.Create
}

func (mock *commentRepoMock) ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error) {
	if mock.ListByBugFunc == nil {
		panic("commentRepoMock.ListByBugFunc: method is nil but commentRepo.ListByBug was just called")
	}
	return mock.ListByBugFunc(ctx, bugID)
}

func (mock *commentRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but commentRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, id)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *commentRepoMock) DeleteCalls() []string {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.Delete
}

var _ bugRepo = &bugRepoMock{}

type bugRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Bug, error)
	TouchFunc   func(ctx context.Context, id string, updatedAt time.Time) error

	calls struct {
		Touch []time.Time
	}
	lock sync.Mutex
}

func (mock *bugRepoMock) GetByID(ctx context.Context, id string) (*domain.Bug, error) {
	if mock.GetByIDFunc == nil {
		panic("bugRepoMock.GetByIDFunc: method is nil but bugRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bugRepoMock) Touch(ctx context.Context, id string, updatedAt time.Time) error {
	if mock.TouchFunc == nil {
		panic("bugRepoMock.TouchFunc: method is nil but bugRepo.Touch was just called")
	}
	mock.lock.Lock()
	mock.calls.Touch = append(mock.calls.Touch, updatedAt)
	mock.lock.Unlock()
	return mock.TouchFunc(ctx, id, updatedAt)
}

func (mock *bugRepoMock) TouchCalls() []time.Time {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.Touch
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
